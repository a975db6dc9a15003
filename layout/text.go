package layout

import (
	"strings"

	"github.com/signadot/xmlfmt/format"
	"github.com/signadot/xmlfmt/token"
)

// TextLines reflows the character data s for a block starting at column
// col. The result is escaped. Each line is trimmed; an empty string stands
// for a blank line which is written without indentation. Lines which do
// not fit are broken greedily at spaces. A single word longer than the
// budget is kept whole.
func TextLines(s string, col int, cfg format.Config, esc *token.Escaper) []string {
	s = TrimSpace(s)
	if s == "" {
		return nil
	}
	var res []string
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.Trim(ln, " \t")
		if ln == "" {
			res = append(res, "")
			continue
		}
		e := esc.Text(ln)
		if col+Width(e) <= cfg.MaxLineLength {
			res = append(res, e)
			continue
		}
		res = append(res, wrapWords(ln, col, cfg.MaxLineLength, esc)...)
	}
	return res
}

func wrapWords(ln string, col, maxLen int, esc *token.Escaper) []string {
	words := strings.FieldsFunc(ln, func(r rune) bool { return r == ' ' || r == '\t' })
	var (
		res []string
		cur string
		w   int
	)
	for _, word := range words {
		e := esc.Text(word)
		ew := Width(e)
		switch {
		case cur == "":
			cur, w = e, ew
		case col+w+1+ew <= maxLen:
			cur += " " + e
			w += 1 + ew
		default:
			res = append(res, cur)
			cur, w = e, ew
		}
	}
	if cur != "" {
		res = append(res, cur)
	}
	return res
}
