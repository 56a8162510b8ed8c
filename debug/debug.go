package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Skeleton bool
	Prune    bool
	CLI      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Skeleton = boolEnv("SHAPE_DEBUG_SKELETON")
	d.Prune = boolEnv("SHAPE_DEBUG_PRUNE")
	d.CLI = boolEnv("SHAPE_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Skeleton() bool {
	return d.Skeleton
}
func Prune() bool {
	return d.Prune
}
func CLI() bool {
	return d.CLI
}
