package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match bool
	Rule  bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("MARCJSON_DEBUG_MATCH")
	d.Rule = boolEnv("MARCJSON_DEBUG_RULE")
	d.Merge = boolEnv("MARCJSON_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Rule() bool {
	return d.Rule
}
func Merge() bool {
	return d.Merge
}
