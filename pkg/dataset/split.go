package dataset

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// TrainTestSplit splits every label of d: the first floor(len*testRate)
// samples go to test, the rest to train, both in their original order. No
// shuffling happens here; shuffle beforehand for a random split.
func TrainTestSplit[L cmp.Ordered, E any](d Dataset[L, E], testRate float64) (train, test Dataset[L, E], err error) {
	if !validProportion(testRate) {
		return nil, nil, fmt.Errorf("%w: got %v", ErrInvalidProportion, testRate)
	}
	train = make(Dataset[L, E], len(d))
	test = make(Dataset[L, E], len(d))
	for label, samples := range d {
		split := int(math.Floor(float64(len(samples)) * testRate))
		test[label] = cloneSamples(samples[:split])
		train[label] = cloneSamples(samples[split:])
	}
	return train, test, nil
}

// Fold is one train/test pair produced by KFold.
type Fold[L cmp.Ordered, E any] struct {
	Train Dataset[L, E]
	Test  Dataset[L, E]
}

// KFold produces k stratified folds: each label's samples are dealt round
// robin into k groups and fold i tests on group i while training on the rest.
// With shuffling (the default) each label is permuted before dealing.
// Labels with fewer than k samples leave some test groups empty.
func KFold[L cmp.Ordered, E any](d Dataset[L, E], k int, opts ...Option) ([]Fold[L, E], error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFolds, k)
	}
	if len(d) == 0 {
		return nil, ErrEmptyInput
	}
	o := gather(opts)

	folds := make([]Fold[L, E], k)
	for i := range folds {
		folds[i] = Fold[L, E]{Train: make(Dataset[L, E], len(d)), Test: make(Dataset[L, E], len(d))}
	}
	for _, label := range d.Labels() {
		samples := d[label]
		order := make([]int, len(samples))
		for i := range order {
			order[i] = i
		}
		if o.shuffle {
			order = o.rng.Perm(len(samples))
		}
		for f := range folds {
			train := make([][]E, 0, len(samples))
			test := make([][]E, 0, len(samples)/k+1)
			for i, idx := range order {
				if i%k == f {
					test = append(test, slices.Clone(samples[idx]))
				} else {
					train = append(train, slices.Clone(samples[idx]))
				}
			}
			folds[f].Train[label] = train
			folds[f].Test[label] = test
		}
	}
	return folds, nil
}
