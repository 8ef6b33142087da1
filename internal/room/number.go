package room

import (
	"fmt"
	"regexp"
	"strconv"
)

var numberRe = regexp.MustCompile(`^([1-9])(\d{2})$`)

// ParsedNumber holds the structured parts of a room number.
type ParsedNumber struct {
	Floor int
	Seq   int
}

// ParseNumber splits a room number like "101" into floor and sequence.
// The first digit is the floor, the remaining two digits the zero-padded
// sequence on that floor.
func ParseNumber(raw string) (ParsedNumber, error) {
	m := numberRe.FindStringSubmatch(raw)
	if m == nil {
		return ParsedNumber{}, fmt.Errorf("invalid room number: %q", raw)
	}

	floor, _ := strconv.Atoi(m[1])
	seq, _ := strconv.Atoi(m[2])
	if seq == 0 {
		return ParsedNumber{}, fmt.Errorf("invalid room number: %q", raw)
	}

	return ParsedNumber{Floor: floor, Seq: seq}, nil
}

// FormatNumber builds the canonical room number for a floor and sequence.
func FormatNumber(floor, seq int) string {
	return fmt.Sprintf("%d%02d", floor, seq)
}

// RateFor returns the fixed monthly rate for a floor: 1800 for floor 1,
// 2000 for floor 2, 2200 for floor 3 and so on.
func RateFor(floor int) int64 {
	return 1600 + 200*int64(floor)
}
