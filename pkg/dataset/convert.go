package dataset

import (
	"cmp"
	"slices"
)

// ToArrays flattens d into parallel sample and label slices. Labels are
// visited in ascending order; with shuffling (the default) one permutation is
// applied to both slices so X[i] keeps its label Y[i].
func ToArrays[L cmp.Ordered, E any](d Dataset[L, E], opts ...Option) Arrays[L, E] {
	o := gather(opts)
	n := d.Len()
	out := Arrays[L, E]{X: make([][]E, 0, n), Y: make([]L, 0, n)}
	for _, label := range d.Labels() {
		for _, sample := range d[label] {
			out.X = append(out.X, slices.Clone(sample))
			out.Y = append(out.Y, label)
		}
	}
	if o.shuffle {
		return permute(out, o.rng.Perm(n))
	}
	return out
}

// Shuffle returns a copy of a with samples and labels shuffled in unison.
// Shuffling cannot be disabled here; WithShuffle is ignored.
func Shuffle[L cmp.Ordered, E any](a Arrays[L, E], opts ...Option) (Arrays[L, E], error) {
	if err := a.validate(); err != nil {
		return Arrays[L, E]{}, err
	}
	o := gather(opts)
	cp := Arrays[L, E]{X: cloneSamples(a.X), Y: a.Y}
	return permute(cp, o.rng.Perm(a.Len())), nil
}

func permute[L cmp.Ordered, E any](a Arrays[L, E], perm []int) Arrays[L, E] {
	out := Arrays[L, E]{X: make([][]E, len(perm)), Y: make([]L, len(perm))}
	for i, idx := range perm {
		out.X[i] = a.X[idx]
		out.Y[i] = a.Y[idx]
	}
	return out
}
