package rcs

import (
	"fmt"
	"time"
)

// Delta is the per-revision metadata record: who committed it and when,
// its lifecycle state, the branches that diverge from it, and the next
// revision along its line. The head's next chain runs toward older trunk
// revisions; a branch revision's next chain runs toward newer ones.
type Delta struct {
	Rev      RevNum
	Date     string // raw timestamp, e.g. 2021.04.10.09.38.42
	Author   string
	State    string // lifecycle state, e.g. Exp or dead
	Branches []RevNum
	Next     RevNum // nil at the end of the chain
	Phrases  Phrases
}

// Dead reports whether the revision was removed (rcs -o leaves these as
// state "dead").
func (d *Delta) Dead() bool {
	return d.State == "dead"
}

// Time parses the Date field. Archive timestamps are UTC, dotted
// Y.M.D.h.m.s with two-digit years in pre-2000 archives.
func (d *Delta) Time() (time.Time, error) {
	num, err := ParseRevNum(d.Date)
	if err != nil || len(num) != 6 {
		return time.Time{}, fmt.Errorf("invalid date: %q", d.Date)
	}
	year := num[0]
	if year < 100 {
		year += 1900
	}
	return time.Date(year, time.Month(num[1]), num[2], num[3], num[4], num[5], 0, time.UTC), nil
}
