package data

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Target       string
	ClassNames   []string // indexed by label code
}

// NumFeatures returns the feature dimensionality.
func (s Schema) NumFeatures() int { return len(s.FeatureNames) }

// NumClasses returns the number of distinct labels.
func (s Schema) NumClasses() int { return len(s.ClassNames) }
