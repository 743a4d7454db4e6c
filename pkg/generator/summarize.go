package generator

import "strings"

// Summarize returns text unchanged when it has at most three sentences.
// Otherwise it joins the first, middle and last sentence.
func Summarize(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) <= 3 {
		return text
	}
	selected := []string{
		sentences[0],
		sentences[len(sentences)/2],
		sentences[len(sentences)-1],
	}
	return strings.Join(selected, " ")
}
