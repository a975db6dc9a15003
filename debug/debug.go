package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Layout bool
	Batch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("XMLFMT_DEBUG_PARSE")
	d.Layout = boolEnv("XMLFMT_DEBUG_LAYOUT")
	d.Batch = boolEnv("XMLFMT_DEBUG_BATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Layout() bool {
	return d.Layout
}
func Batch() bool {
	return d.Batch
}

// Set overrides the environment; used by tests.
func Set(parse, layout, batch bool) {
	d.Parse, d.Layout, d.Batch = parse, layout, batch
}
