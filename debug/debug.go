package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Build bool
	Eval  bool
	Rows  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("PATHJSON_DEBUG_BUILD")
	d.Eval = boolEnv("PATHJSON_DEBUG_EVAL")
	d.Rows = boolEnv("PATHJSON_DEBUG_ROWS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Eval() bool {
	return d.Eval
}
func Rows() bool {
	return d.Rows
}
