package generator

import "strings"

// wordTrim is the punctuation stripped from both ends of a word.
const wordTrim = ".,!?;:\""

// SplitSentences splits text after '.', '!' or '?' when followed by one or
// more spaces. Other whitespace does not end a sentence.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminator(text[i]) || i+1 >= len(text) || text[i+1] != ' ' {
			continue
		}
		out = append(out, text[start:i+1])
		j := i + 1
		for j < len(text) && text[j] == ' ' {
			j++
		}
		start = j
		i = j - 1
	}
	return append(out, text[start:])
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func stripWord(w string) string {
	return strings.Trim(w, wordTrim)
}
