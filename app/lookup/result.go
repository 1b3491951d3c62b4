package lookup

// Reply keys expected from the model, one per line
const (
	KeyWord          = "word"
	KeyTranslation   = "translation"
	KeyTranscription = "transcription"
	KeyPronunciation = "pronunciation"
	KeyExample1En    = "example1_en"
	KeyExample1Ru    = "example1_ru"
	KeyExample2En    = "example2_en"
	KeyExample2Ru    = "example2_ru"
	KeyExample3En    = "example3_en"
	KeyExample3Ru    = "example3_ru"
)

// Keys lists reply keys in record order
var Keys = []string{
	KeyWord,
	KeyTranslation,
	KeyTranscription,
	KeyPronunciation,
	KeyExample1En,
	KeyExample1Ru,
	KeyExample2En,
	KeyExample2Ru,
	KeyExample3En,
	KeyExample3Ru,
}

// WordResult holds parsed data for a single looked up word.
// Any field missing from the reply is an empty string
type WordResult struct {
	Word          string `json:"word"`
	Translation   string `json:"translation"`
	Transcription string `json:"transcription"`
	Pronunciation string `json:"pronunciation"`
	Example1En    string `json:"example1_en"`
	Example1Ru    string `json:"example1_ru"`
	Example2En    string `json:"example2_en"`
	Example2Ru    string `json:"example2_ru"`
	Example3En    string `json:"example3_en"`
	Example3Ru    string `json:"example3_ru"`
}
