package y2021

import (
	aoc "github.com/maisem/aoc2021"
	"tailscale.com/types/logger"
)

func register(s string, logf logger.Logf) *aoc.Registration {
	scanners := aoc.MustGet(aoc.ParseScanners(s))
	return aoc.MustGet(aoc.Register(scanners, aoc.RegisterOptions{Logf: logf}))
}

// Day19Part1 counts the distinct beacons seen by all scanners.
func Day19Part1(s string, logf logger.Logf) int {
	return len(register(s, logf).Beacons())
}

// Day19Part2 is the largest manhattan distance between two scanners.
func Day19Part2(s string, logf logger.Logf) int {
	return register(s, logf).MaxOriginDistance()
}
