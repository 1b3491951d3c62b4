package lookup

import (
	"bytes"
	"text/template"

	"github.com/rs/zerolog/log"
)

// Field values are inserted as is, markdown in translations is not escaped
const blockTemplate = `## {{ .Word }}
- **Translation:** {{ .Translation }}
- **Transcription:** {{ .Transcription }}
- **Pronunciation:** {{ .Pronunciation }}

**Examples:**
1. {{ .Example1En }}
   {{ .Example1Ru }}
2. {{ .Example2En }}
   {{ .Example2Ru }}
3. {{ .Example3En }}
   {{ .Example3Ru }}

---
`

var blockTmpl = template.Must(template.New("block").Parse(blockTemplate))

// Format renders result as a markdown block ready to be appended to a document
func Format(result WordResult) string {
	buf := &bytes.Buffer{}
	if err := blockTmpl.Execute(buf, result); err != nil {
		log.Error().Err(err).Str("word", result.Word).Msg("failed to format word block")
	}
	return buf.String()
}
