package scoring

import (
	"fmt"
	"strconv"

	"github.com/sikarir/sikarir-backend/internal/utils"
)

// AnswerCount is the full quiz sheet: 50 Likert items followed by 50
// multiple-choice aptitude items.
const AnswerCount = 100

// OrderAnswers re-orders the raw submission, which arrives as a mapping
// from "0".."99" to answer values, into positional form. The sheet must
// be complete: anything other than exactly the 100 expected keys is
// rejected before any scoring happens.
func OrderAnswers(raw map[string]string) ([]string, error) {
	const op = "scoring.OrderAnswers"

	if len(raw) != AnswerCount {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			fmt.Sprintf("expected %d answers, got %d", AnswerCount, len(raw)), nil)
	}

	ordered := make([]string, AnswerCount)
	seen := make([]bool, AnswerCount)
	for k, v := range raw {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 || idx >= AnswerCount {
			return nil, utils.E(utils.CodeInvalidArgument, op,
				fmt.Sprintf("invalid answer index %q", k), err)
		}
		if seen[idx] {
			return nil, utils.E(utils.CodeInvalidArgument, op,
				fmt.Sprintf("duplicate answer index %d", idx), nil)
		}
		seen[idx] = true
		ordered[idx] = v
	}
	return ordered, nil
}
