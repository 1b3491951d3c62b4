package lookup

import "fmt"

// NotAWord is what the model puts into every field for non-English input
const NotAWord = "Это не английское слово"

const systemPrompt = `You are an English-Russian dictionary.
For the given English word reply with exactly these ten lines and nothing else:
word: <the word>
translation: <Russian translation>
transcription: <IPA transcription>
pronunciation: <pronunciation written in Russian letters>
example1_en: <example sentence in English>
example1_ru: <its Russian translation>
example2_en: <example sentence in English>
example2_ru: <its Russian translation>
example3_en: <example sentence in English>
example3_ru: <its Russian translation>
Use the keys exactly as written, one "key: value" pair per line, no markdown.
If the input is not an English word, put "` + NotAWord + `" as the value of every key.`

func userPrompt(word string) string {
	return fmt.Sprintf("Word: %s", word)
}
