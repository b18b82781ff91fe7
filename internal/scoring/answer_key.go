package scoring

const (
	likertCount   = 50
	aptitudeCount = 50
)

// aptitudeKey holds the correct option for each multiple-choice item,
// ten per block: numerical, spatial, abstract reasoning, verbal
// reasoning, perceptual. Fixed alongside the question bank.
var aptitudeKey = [aptitudeCount]string{
	// numerical
	"B", "D", "A", "C", "E", "B", "A", "D", "C", "E",
	// spatial
	"C", "A", "D", "B", "E", "C", "B", "A", "E", "D",
	// abstract reasoning
	"A", "C", "B", "E", "D", "A", "D", "C", "B", "E",
	// verbal reasoning
	"D", "B", "E", "A", "C", "D", "C", "E", "A", "B",
	// perceptual
	"E", "C", "A", "D", "B", "E", "B", "D", "C", "A",
}
