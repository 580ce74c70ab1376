package roster

import "github.com/guimove/pewfit/internal/model"

// TrimToCapacity splits households, in input order, into those considered
// for seating and those cut by the venue limit. A household is kept while
// the running head count before it is at most limit, so the last kept
// household may push the total past the limit.
func TrimToCapacity(households []model.Household, limit int) (kept, cut []model.Household) {
	total := 0
	for i := range households {
		if total > limit {
			return households[:i], households[i:]
		}
		total += households[i].Size
	}
	return households, nil
}
