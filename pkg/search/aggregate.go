package search

import "github.com/Prince-05/SVM-Optimazation/pkg/errs"

// Summary is the cross-partition reduction of a run.
type Summary struct {
	Outcomes []Outcome
	best     int
}

// Aggregate builds a Summary from outcomes in partition order. The best
// outcome is the first one holding the maximum best accuracy.
func Aggregate(outcomes []Outcome) (*Summary, error) {
	if len(outcomes) == 0 {
		return nil, errs.Configf("outcomes", "cannot aggregate zero outcomes")
	}
	best := 0
	for i := 1; i < len(outcomes); i++ {
		if outcomes[i].BestAccuracy > outcomes[best].BestAccuracy {
			best = i
		}
	}
	return &Summary{Outcomes: outcomes, best: best}, nil
}

// Best returns the globally best outcome.
func (s *Summary) Best() Outcome { return s.Outcomes[s.best] }

// BestIndex returns the position of Best in Outcomes.
func (s *Summary) BestIndex() int { return s.best }
