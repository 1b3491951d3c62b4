package lookup

import "strings"

// Parse converts model reply into WordResult.
//
// Every line of the form "key: value" sets the field named by key
// (case-insensitive). Lines without a colon and unknown keys are ignored,
// a repeated key overrides the previous value.
func Parse(text string) WordResult {
	fields := make(map[string]string, len(Keys))
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(line[:idx]))
		fields[key] = strings.TrimSpace(line[idx+1:])
	}
	return WordResult{
		Word:          fields[KeyWord],
		Translation:   fields[KeyTranslation],
		Transcription: fields[KeyTranscription],
		Pronunciation: fields[KeyPronunciation],
		Example1En:    fields[KeyExample1En],
		Example1Ru:    fields[KeyExample1Ru],
		Example2En:    fields[KeyExample2En],
		Example2Ru:    fields[KeyExample2Ru],
		Example3En:    fields[KeyExample3En],
		Example3Ru:    fields[KeyExample3Ru],
	}
}
