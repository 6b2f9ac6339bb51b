package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelEncode(t *testing.T) {
	codes, mapping := LabelEncode([]string{"setosa", "virginica", "setosa", "versicolor"})

	assert.Equal(t, []int{0, 1, 0, 2}, codes)
	assert.Equal(t, map[string]int{"setosa": 0, "virginica": 1, "versicolor": 2}, mapping)
	assert.Equal(t, []string{"setosa", "virginica", "versicolor"}, ClassNames(mapping))
}

func TestValueCounts(t *testing.T) {
	assert.Equal(t, []int{2, 1, 0}, ValueCounts([]int{0, 1, 0, 7, -1}, 3))
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", " ", "NA", "NaN", "?"} {
		assert.True(t, IsMissing(v), v)
	}
	assert.False(t, IsMissing("0.2"))
}
