package drawing

import (
	"fmt"
	"regexp"
	"strings"
)

// Models sometimes echo their own "NOTE 1:" numbering despite the schema
// descriptions. Strip it before applying ours.
var notePrefixRe = regexp.MustCompile(`(?i)^note\s*\d+\s*:\s*`)

func normalizeField(n int, raw string) string {
	s := notePrefixRe.ReplaceAllString(strings.TrimSpace(raw), "")
	return fmt.Sprintf("%d. %s", n, s)
}

// normalizeNotes applies the canonical "1."–"4." prefixes so the output block
// is consistent regardless of what the model returned.
func normalizeNotes(raw Notes) Notes {
	return Notes{
		MaterialDescription: normalizeField(1, raw.MaterialDescription),
		Grade:               normalizeField(2, raw.Grade),
		GeneralNotes:        normalizeField(3, raw.GeneralNotes),
		FinishNotes:         normalizeField(4, raw.FinishNotes),
	}
}
