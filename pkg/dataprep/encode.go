package dataprep

import "strings"

// LabelEncode encodes categories as integers in first-seen order.
func LabelEncode(data []string) ([]int, map[string]int) {
	unique := map[string]int{}
	out := make([]int, len(data))
	for i, v := range data {
		if _, ok := unique[v]; !ok {
			unique[v] = len(unique)
		}
		out[i] = unique[v]
	}
	return out, unique
}

// ClassNames inverts a LabelEncode mapping into a slice indexed by code.
func ClassNames(mapping map[string]int) []string {
	names := make([]string, len(mapping))
	for name, code := range mapping {
		names[code] = name
	}
	return names
}

// ValueCounts counts occurrences of every code in [0, nClasses).
// Codes outside that range are ignored.
func ValueCounts(codes []int, nClasses int) []int {
	counts := make([]int, nClasses)
	for _, c := range codes {
		if c >= 0 && c < nClasses {
			counts[c]++
		}
	}
	return counts
}

// IsMissing reports whether a raw cell denotes a missing value.
func IsMissing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NA", "NaN", "?":
		return true
	}
	return false
}
