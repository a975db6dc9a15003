package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff, without its trailing newline. NoEOL is set
// on the last line of a text that does not end with a newline.
type Line struct {
	Op    Op
	Text  string
	NoEOL bool
}

type Hunk struct {
	FromLine, FromCount int
	ToLine, ToCount     int
	Lines               []Line
}

func (h *Hunk) Header() string {
	return fmt.Sprintf("@@ -%s +%s @@", span(h.FromLine, h.FromCount), span(h.ToLine, h.ToCount))
}

func span(line, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", line)
	}
	return fmt.Sprintf("%d,%d", line, count)
}

const DefaultContext = 3

type diffOpts struct {
	context int
	color   bool
}

type DiffOption func(*diffOpts)

func DiffContext(n int) DiffOption {
	return func(o *diffOpts) { o.context = max(n, 0) }
}

// DiffColor highlights removed, added and header lines with ANSI colors.
func DiffColor(v bool) DiffOption {
	return func(o *diffOpts) { o.color = v }
}

// Lines returns the line by line difference between from and to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{
				Op:    op,
				Text:  strings.TrimSuffix(ln, "\n"),
				NoEOL: !strings.HasSuffix(ln, "\n"),
			})
		}
	}
	return res
}

// Hunks groups the changes in lines with context lines of unchanged text
// around them. Changes closer than twice the context share a hunk.
func Hunks(lines []Line, context int) []Hunk {
	n := len(lines)
	fromBefore := make([]int, n+1)
	toBefore := make([]int, n+1)
	for i, ln := range lines {
		fromBefore[i+1], toBefore[i+1] = fromBefore[i], toBefore[i]
		if ln.Op != Insert {
			fromBefore[i+1]++
		}
		if ln.Op != Delete {
			toBefore[i+1]++
		}
	}
	var res []Hunk
	for i := 0; i < n; {
		for i < n && lines[i].Op == Equal {
			i++
		}
		if i == n {
			break
		}
		start := max(0, i-context)
		end := i
		for {
			for end < n && lines[end].Op != Equal {
				end++
			}
			j := end
			for j < n && lines[j].Op == Equal {
				j++
			}
			if j < n && j-end <= 2*context {
				end = j
				continue
			}
			break
		}
		stop := min(n, end+context)
		h := Hunk{
			FromLine:  fromBefore[start] + 1,
			FromCount: fromBefore[stop] - fromBefore[start],
			ToLine:    toBefore[start] + 1,
			ToCount:   toBefore[stop] - toBefore[start],
			Lines:     lines[start:stop],
		}
		if h.FromCount == 0 {
			h.FromLine--
		}
		if h.ToCount == 0 {
			h.ToLine--
		}
		res = append(res, h)
		i = stop
	}
	return res
}

// Unified returns the unified diff turning from into to, or "" if they are
// equal.
func Unified(fromName, toName, from, to string, opts ...DiffOption) string {
	o := &diffOpts{context: DefaultContext}
	for _, opt := range opts {
		opt(o)
	}
	if from == to {
		return ""
	}
	hunks := Hunks(Lines(from, to), o.context)
	if len(hunks) == 0 {
		return ""
	}
	paint := func(_ *color.Color, s string) string { return s }
	if o.color {
		paint = func(c *color.Color, s string) string {
			c.EnableColor()
			return c.Sprint(s)
		}
	}
	var (
		bold = color.New(color.Bold)
		cyan = color.New(color.FgCyan)
		red  = color.New(color.FgRed)
		grn  = color.New(color.FgGreen)
	)
	var sb strings.Builder
	sb.WriteString(paint(bold, "--- "+fromName) + "\n")
	sb.WriteString(paint(bold, "+++ "+toName) + "\n")
	for i := range hunks {
		h := &hunks[i]
		sb.WriteString(paint(cyan, h.Header()) + "\n")
		for _, ln := range h.Lines {
			s := ln.Op.Prefix() + ln.Text
			switch ln.Op {
			case Delete:
				s = paint(red, s)
			case Insert:
				s = paint(grn, s)
			}
			sb.WriteString(s + "\n")
			if ln.NoEOL {
				sb.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return sb.String()
}
