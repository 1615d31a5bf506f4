package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Op      bool
	Patch   bool
	Context bool
	Rules   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Op = boolEnv("JSONLENS_DEBUG_OP")
	d.Patch = boolEnv("JSONLENS_DEBUG_PATCH")
	d.Context = boolEnv("JSONLENS_DEBUG_CONTEXT")
	d.Rules = boolEnv("JSONLENS_DEBUG_RULES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Op() bool {
	return d.Op
}
func Patch() bool {
	return d.Patch
}
func Context() bool {
	return d.Context
}
func Rules() bool {
	return d.Rules
}
