package main

import (
	"os"
	"strconv"
)

// envVar is an environment variable that provides a flag default.
type envVar struct {
	Name string
	Defv string
	Desc string
}

const (
	envLog        = "MBARRIER_LOG"
	envIterations = "MBARRIER_ITERATIONS"
	envRounds     = "MBARRIER_ROUNDS"
)

var envTable = []envVar{
	{envLog, "warn", "Default log level"},
	{envIterations, "1000000", "Default iterations per benchmark sample"},
	{envRounds, "200000", "Default rounds of the litmus test"},
}

func envVars() []envVar {
	return envTable
}

// getEnv returns the value of a registered variable, or its default.
func getEnv(name string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	for _, ev := range envTable {
		if ev.Name == name {
			return ev.Defv
		}
	}
	return ""
}

// getEnvInt is getEnv for integer variables. Malformed values fall back to
// the registered default.
func getEnvInt(name string) int {
	if n, err := strconv.Atoi(getEnv(name)); err == nil {
		return n
	}
	for _, ev := range envTable {
		if ev.Name == name {
			n, _ := strconv.Atoi(ev.Defv)
			return n
		}
	}
	return 0
}
