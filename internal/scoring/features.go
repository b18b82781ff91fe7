package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sikarir/sikarir-backend/internal/utils"
)

// FeatureVector is the model input: five Big-Five trait scores computed
// from the Likert half of the sheet, and five aptitude subscores (correct
// answers out of 10) from the multiple-choice half.
type FeatureVector struct {
	OScore float64 `json:"o_score"`
	CScore float64 `json:"c_score"`
	EScore float64 `json:"e_score"`
	AScore float64 `json:"a_score"`
	NScore float64 `json:"n_score"`

	NumericalAptitude  int `json:"numerical_aptitude"`
	SpatialAptitude    int `json:"spatial_aptitude"`
	AbstractReasoning  int `json:"abstract_reasoning"`
	VerbalReasoning    int `json:"verbal_reasoning"`
	PerceptualAptitude int `json:"perceptual_aptitude"`
}

// ModelInput flattens the vector into the positional order the deployed
// classifier was trained against. Note: perceptual comes before abstract
// and verbal here, unlike the struct declaration order. Do not reorder.
func (f FeatureVector) ModelInput() []float64 {
	return []float64{
		f.OScore,
		f.CScore,
		f.EScore,
		f.AScore,
		f.NScore,
		float64(f.NumericalAptitude),
		float64(f.SpatialAptitude),
		float64(f.PerceptualAptitude),
		float64(f.AbstractReasoning),
		float64(f.VerbalReasoning),
	}
}

// Extract scores an ordered 100-answer sheet. Pure: same input, same
// output, no side effects.
//
// Likert items are signed per the scoring rubric; the constant offsets
// (18/24/30/24/48) balance the reverse-keyed items and are literal rubric
// values, not derived. Aptitude items are graded against the fixed answer
// key in five contiguous 10-item blocks.
func Extract(answers []string) (FeatureVector, error) {
	const op = "scoring.Extract"

	if len(answers) != AnswerCount {
		return FeatureVector{}, utils.E(utils.CodeInvalidArgument, op,
			fmt.Sprintf("expected %d answers, got %d", AnswerCount, len(answers)), nil)
	}

	// Likert half: integers 1..6.
	a := make([]int, likertCount)
	for i := 0; i < likertCount; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(answers[i]))
		if err != nil || v < 1 || v > 6 {
			return FeatureVector{}, utils.E(utils.CodeInvalidArgument, op,
				fmt.Sprintf("answer %d must be an integer 1-6, got %q", i, answers[i]), err)
		}
		a[i] = v
	}

	fv := FeatureVector{
		OScore: float64(18-a[9]-a[19]-a[29]+a[4]+a[14]+a[24]+a[34]+a[39]+a[44]+a[49]) / 4,
		CScore: float64(24-a[7]-a[17]-a[27]-a[37]+a[2]+a[12]+a[22]+a[32]+a[42]+a[47]) / 4,
		EScore: float64(30-a[5]-a[15]-a[25]-a[35]-a[45]+a[0]+a[10]+a[20]+a[30]+a[40]) / 4,
		AScore: float64(24-a[1]-a[11]-a[21]-a[31]+a[6]+a[16]+a[26]+a[36]+a[41]+a[46]) / 4,
		NScore: float64(48-a[3]-a[13]-a[23]-a[28]-a[33]-a[38]-a[43]-a[48]+a[8]+a[18]) / 4,
	}

	// Aptitude half: one correctness bit per item, summed per block.
	var bits [aptitudeCount]int
	for i := 0; i < aptitudeCount; i++ {
		ans := strings.ToUpper(strings.TrimSpace(answers[likertCount+i]))
		if ans == aptitudeKey[i] {
			bits[i] = 1
		}
	}
	fv.NumericalAptitude = sumBits(bits[0:10])
	fv.SpatialAptitude = sumBits(bits[10:20])
	fv.AbstractReasoning = sumBits(bits[20:30])
	fv.VerbalReasoning = sumBits(bits[30:40])
	fv.PerceptualAptitude = sumBits(bits[40:50])

	return fv, nil
}

func sumBits(bits []int) int {
	n := 0
	for _, b := range bits {
		n += b
	}
	return n
}
