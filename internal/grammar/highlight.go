package grammar

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Highlight renders a word-level diff between the original and corrected
// text. Removed words appear as [word] and inserted words as (word), so
// "She go to school" corrected to "She goes to school" yields
// "She [go] (goes) to school".
func Highlight(original, corrected string) string {
	a := strings.Fields(original)
	b := strings.Fields(corrected)

	m := difflib.NewMatcher(a, b)

	var parts []string
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			parts = append(parts, a[op.I1:op.I2]...)
		case 'd':
			parts = append(parts, wrap(a[op.I1:op.I2], "[", "]"))
		case 'i':
			parts = append(parts, wrap(b[op.J1:op.J2], "(", ")"))
		case 'r':
			parts = append(parts, wrap(a[op.I1:op.I2], "[", "]"))
			parts = append(parts, wrap(b[op.J1:op.J2], "(", ")"))
		}
	}

	return strings.Join(parts, " ")
}

func wrap(words []string, open, close string) string {
	return open + strings.Join(words, " ") + close
}
