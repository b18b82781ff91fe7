package scoring

import (
	"fmt"
	"sort"

	"github.com/sikarir/sikarir-backend/internal/utils"
)

// TopK is how many careers a quiz submission recommends.
const TopK = 5

// TopCareers picks the k highest-scoring labels from the raw model
// output. Ties keep label-index order (stable sort over an ascending
// index sequence), so equal inputs always produce equal output.
//
// A score vector whose length does not match the label table is an
// internal invariant violation, not a user error.
func TopCareers(scores []float64, k int) ([]string, error) {
	const op = "scoring.TopCareers"

	if len(scores) != LabelCount {
		return nil, utils.E(utils.CodeInternal, op,
			fmt.Sprintf("score vector length %d does not match label table size %d", len(scores), LabelCount), nil)
	}
	if k <= 0 || k > LabelCount {
		return nil, utils.E(utils.CodeInternal, op, fmt.Sprintf("invalid k %d", k), nil)
	}

	idx := make([]int, LabelCount)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	top := make([]string, 0, k)
	for _, i := range idx[:k] {
		top = append(top, careerLabels[i])
	}
	return top, nil
}
