package lookup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		result := WordResult{
			Word:          "run",
			Translation:   "бежать",
			Transcription: "/rʌn/",
			Pronunciation: "ран",
			Example1En:    "I run every day.",
			Example1Ru:    "Я бегаю каждый день.",
			Example2En:    "e2",
			Example2Ru:    "r2",
			Example3En:    "e3",
			Example3Ru:    "r3",
		}
		expected := "## run\n" +
			"- **Translation:** бежать\n" +
			"- **Transcription:** /rʌn/\n" +
			"- **Pronunciation:** ран\n" +
			"\n" +
			"**Examples:**\n" +
			"1. I run every day.\n" +
			"   Я бегаю каждый день.\n" +
			"2. e2\n" +
			"   r2\n" +
			"3. e3\n" +
			"   r3\n" +
			"\n" +
			"---\n"
		assert.Equal(t, expected, Format(result))
	})
	t.Run("empty fields keep layout", func(t *testing.T) {
		text := Format(WordResult{Word: "x"})
		assert.True(t, strings.HasPrefix(text, "## x\n"))
		assert.Contains(t, text, "- **Translation:** \n")
		assert.Contains(t, text, "1. \n   \n2. \n   \n3. \n   \n")
		assert.True(t, strings.HasSuffix(text, "---\n"))
	})
	t.Run("values are not escaped", func(t *testing.T) {
		text := Format(WordResult{Word: "<b>", Translation: "# *bold* & more"})
		assert.Contains(t, text, "## <b>\n")
		assert.Contains(t, text, "- **Translation:** # *bold* & more\n")
	})
}

func TestFormatParsedReply(t *testing.T) {
	values := map[string]string{}
	lines := make([]string, 0, len(Keys))
	for _, key := range Keys {
		values[key] = "value of " + key
		lines = append(lines, key+": "+values[key])
	}
	text := Format(Parse(strings.Join(lines, "\n")))

	assert.True(t, strings.HasPrefix(text, "## value of word\n"))
	last := 0
	for _, key := range []string{
		KeyExample1En, KeyExample1Ru, KeyExample2En, KeyExample2Ru, KeyExample3En, KeyExample3Ru,
	} {
		idx := strings.Index(text, values[key])
		if assert.GreaterOrEqual(t, idx, 0, key) {
			assert.Greater(t, idx, last, key)
			last = idx
		}
	}
}
