package dataset

import (
	"cmp"
	"maps"
	"slices"
)

// Dataset is the mapping form: each label owns an ordered list of samples.
type Dataset[L cmp.Ordered, E any] map[L][][]E

// Arrays is the array form: X[i] is labeled Y[i].
type Arrays[L cmp.Ordered, E any] struct {
	X [][]E
	Y []L
}

// LabelCount pairs a label with how often it occurs.
type LabelCount[L cmp.Ordered] struct {
	Label L
	Count int
}

// Labels returns the dataset's labels in ascending order.
func (d Dataset[L, E]) Labels() []L {
	return slices.Sorted(maps.Keys(d))
}

// Len returns the total number of samples across all labels.
func (d Dataset[L, E]) Len() int {
	n := 0
	for _, samples := range d {
		n += len(samples)
	}
	return n
}

// Clone deep copies the dataset, sample vectors included.
func (d Dataset[L, E]) Clone() Dataset[L, E] {
	out := make(Dataset[L, E], len(d))
	for label, samples := range d {
		out[label] = cloneSamples(samples)
	}
	return out
}

// Len returns the number of samples.
func (a Arrays[L, E]) Len() int { return len(a.Y) }

func (a Arrays[L, E]) validate() error {
	if len(a.X) != len(a.Y) {
		return ErrLengthMismatch
	}
	return nil
}

// Group regroups the array form into a Dataset, keeping each label's samples
// in input order.
func Group[L cmp.Ordered, E any](a Arrays[L, E]) (Dataset[L, E], error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	out := make(Dataset[L, E])
	for i, label := range a.Y {
		out[label] = append(out[label], slices.Clone(a.X[i]))
	}
	return out, nil
}

// Counts returns every distinct label with its occurrence count, sorted by label.
func Counts[L cmp.Ordered, E any](a Arrays[L, E]) []LabelCount[L] {
	seen := map[L]int{}
	for _, label := range a.Y {
		seen[label]++
	}
	out := make([]LabelCount[L], 0, len(seen))
	for _, label := range slices.Sorted(maps.Keys(seen)) {
		out = append(out, LabelCount[L]{Label: label, Count: seen[label]})
	}
	return out
}

func cloneSamples[E any](samples [][]E) [][]E {
	out := make([][]E, len(samples))
	for i, s := range samples {
		out[i] = slices.Clone(s)
	}
	return out
}

func validProportion(p float64) bool {
	// NaN fails both comparisons.
	return p >= 0 && p <= 1
}
