package dataset

import (
	"cmp"
	"fmt"
	"slices"
)

// buckets collects samples per label, refusing appends past a fixed cap.
type buckets[L cmp.Ordered, E any] struct {
	limit int
	data  Dataset[L, E]
}

func newBuckets[L cmp.Ordered, E any](labels []L, limit int) *buckets[L, E] {
	b := &buckets[L, E]{limit: limit, data: make(Dataset[L, E], len(labels))}
	for _, label := range labels {
		b.data[label] = make([][]E, 0, limit)
	}
	return b
}

// add appends sample to label's bucket. It reports false when the label is
// not tracked or its bucket is already full.
func (b *buckets[L, E]) add(label L, sample []E) bool {
	bucket, ok := b.data[label]
	if !ok || len(bucket) >= b.limit {
		return false
	}
	b.data[label] = append(bucket, slices.Clone(sample))
	return true
}

// Balance keeps the most frequent labels of a and caps each of them at the
// count of the least frequent kept label, so every label in the result has
// the same number of samples. Samples are taken in input order.
//
// Labels are ranked by count, ties by label value. WithLabelNumber limits how
// many labels are kept; by default all of them are.
func Balance[L cmp.Ordered, E any](a Arrays[L, E], opts ...Option) (Dataset[L, E], error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return nil, ErrEmptyInput
	}
	o := gather(opts)
	if o.labelNumber < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLabelNumber, o.labelNumber)
	}

	ranked := Counts(a)
	slices.SortStableFunc(ranked, func(x, y LabelCount[L]) int {
		if c := cmp.Compare(x.Count, y.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.Label, y.Label)
	})
	n := o.labelNumber
	if n == 0 || n > len(ranked) {
		n = len(ranked)
	}
	keep := ranked[len(ranked)-n:]

	labels := make([]L, len(keep))
	for i, lc := range keep {
		labels[i] = lc.Label
	}
	b := newBuckets[L, E](labels, keep[0].Count)
	for i, label := range a.Y {
		b.add(label, a.X[i])
	}
	return b.data, nil
}
