package stats

import (
	"cmp"
	"math"

	"gonum.org/v1/gonum/stat"

	"labelprep/pkg/dataset"
)

// ClassSummary describes the samples of one label.
type ClassSummary[L cmp.Ordered] struct {
	Label L
	Count int
	// Share is Count over the total number of samples.
	Share float64
	// Mean and Std hold per-feature population statistics.
	Mean []float64
	Std  []float64
}

// Summarize computes per-label statistics, sorted by label. Features are
// taken from the first sample of each label; shorter samples are ignored for
// the columns they lack.
func Summarize[L cmp.Ordered](d dataset.Dataset[L, float64]) []ClassSummary[L] {
	total := d.Len()
	out := make([]ClassSummary[L], 0, len(d))
	for _, label := range d.Labels() {
		samples := d[label]
		s := ClassSummary[L]{Label: label, Count: len(samples)}
		if total > 0 {
			s.Share = float64(len(samples)) / float64(total)
		}
		if len(samples) > 0 {
			cols := len(samples[0])
			s.Mean = make([]float64, cols)
			s.Std = make([]float64, cols)
			col := make([]float64, 0, len(samples))
			for j := range cols {
				col = col[:0]
				for _, x := range samples {
					if j < len(x) {
						col = append(col, x[j])
					}
				}
				s.Mean[j], s.Std[j] = stat.PopMeanStdDev(col, nil)
			}
		}
		out = append(out, s)
	}
	return out
}

// ImbalanceRatio returns the largest class count over the smallest. It is
// +Inf when some class is empty and NaN when there are no classes.
func ImbalanceRatio[L cmp.Ordered](summaries []ClassSummary[L]) float64 {
	if len(summaries) == 0 {
		return math.NaN()
	}
	lo, hi := summaries[0].Count, summaries[0].Count
	for _, s := range summaries[1:] {
		lo = min(lo, s.Count)
		hi = max(hi, s.Count)
	}
	if lo == 0 {
		return math.Inf(1)
	}
	return float64(hi) / float64(lo)
}
