package dataset

import (
	"cmp"
	"fmt"
	"math"
)

// ReduceClass shrinks the samples of the first label in ascending label
// order to floor(len*proportion) and returns the new dataset with the label
// it reduced. Use ReduceClassOf to pick the label explicitly.
func ReduceClass[L cmp.Ordered, E any](d Dataset[L, E], proportion float64, opts ...Option) (Dataset[L, E], L, error) {
	var zero L
	if len(d) == 0 {
		return nil, zero, ErrEmptyInput
	}
	label := d.Labels()[0]
	out, err := ReduceClassOf(d, label, proportion, opts...)
	return out, label, err
}

// ReduceClassOf keeps floor(len*proportion) of label's samples. With
// shuffling (the default) the kept samples are a random subset rather than a
// prefix. Every other label is copied unchanged; d is not modified.
func ReduceClassOf[L cmp.Ordered, E any](d Dataset[L, E], label L, proportion float64, opts ...Option) (Dataset[L, E], error) {
	if !validProportion(proportion) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidProportion, proportion)
	}
	samples, ok := d[label]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrLabelNotFound, label)
	}
	o := gather(opts)

	out := d.Clone()
	keep := int(math.Floor(float64(len(samples)) * proportion))
	kept := out[label]
	if o.shuffle {
		perm := o.rng.Perm(len(kept))
		shuffled := make([][]E, len(kept))
		for i, idx := range perm {
			shuffled[i] = kept[idx]
		}
		kept = shuffled
	}
	out[label] = kept[:keep:keep]
	return out, nil
}
