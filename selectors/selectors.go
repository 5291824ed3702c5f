package selectors

import (
	"sort"

	"github.com/Leo890106/P3C/dataset"
)

// Prepared is the candidate selector set for one mining run: predictor
// and target selectors that met the minimum support count, each group
// ordered most-frequent-first.
type Prepared struct {
	// Predictor holds frequent selectors of predictor attributes
	// (attribute id < PredictAttrCount).
	Predictor []*dataset.Selector
	// Target holds frequent selectors of target attributes. Empty for
	// sparse/dense binary sources, where the target count is fixed to zero.
	Target []*dataset.Selector
	// MinSupCount is the support threshold the groups were filtered by.
	MinSupCount int
}

// Prepare builds the candidate selector set from a reader whose
// statistics pass has completed. Selectors with Frequency below
// MinSupCount are dropped; the rest split into predictor/target groups
// and sort by descending frequency with (attr id, value) tie-breaks.
func Prepare(r dataset.Reader) Prepared {
	minSup := r.MinSupCount()
	predictCount := r.PredictAttrCount()

	out := Prepared{MinSupCount: minSup}
	for _, attr := range r.Attributes() {
		for _, s := range attr.Selectors() {
			if s.Frequency < minSup {
				continue
			}
			if s.AttrID < predictCount {
				out.Predictor = append(out.Predictor, s)
			} else {
				out.Target = append(out.Target, s)
			}
		}
	}
	orderByFrequency(out.Predictor)
	orderByFrequency(out.Target)

	return out
}

// PrepareOneGroup is the single-group variant: predictor and target
// selectors pooled together and ordered as one list.
func PrepareOneGroup(r dataset.Reader) []*dataset.Selector {
	minSup := r.MinSupCount()

	var pool []*dataset.Selector
	for _, attr := range r.Attributes() {
		for _, s := range attr.Selectors() {
			if s.Frequency >= minSup {
				pool = append(pool, s)
			}
		}
	}
	orderByFrequency(pool)

	return pool
}

// orderByFrequency sorts in place: frequency descending, then attribute
// id ascending, then value ascending. Stable and deterministic.
func orderByFrequency(sels []*dataset.Selector) {
	sort.SliceStable(sels, func(i, j int) bool {
		a, b := sels[i], sels[j]
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		if a.AttrID != b.AttrID {
			return a.AttrID < b.AttrID
		}

		return a.Value < b.Value
	})
}
