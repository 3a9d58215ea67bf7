package gigahertz

import (
	"errors"
	"fmt"
)

const (
	Rows    = 16
	Columns = 4
)

// ErrOutOfRange reports a code or version outside the table.
var ErrOutOfRange = errors.New("gigahertz table index out of range")

// Table holds throughput in gigahertz indexed by [code][version], where the
// version column is the raw 2-bit value (column 0 is "version 1").
var Table = [Rows][Columns]int{
	{0, 0, 0, 100},
	{0, 0, 100, 200},
	{0, 100, 150, 250},
	{0, 125, 175, 340},
	{5, 125, 180, 365},
	{10, 150, 200, 365},
	{10, 150, 375, 375},
	{10, 150, 400, 400},
	{15, 150, 450, 1000},
	{15, 150, 450, 1150},
	{15, 150, 500, 1250},
	{20, 155, 550, 5000},
	{100, 200, 1560, 9800},
	{150, 250, 2000, 12100},
	{230, 330, 6000, 23500},
	{300, 500, 18000, 235550},
}

// Lookup returns the throughput for code (0-15) and raw version (0-3).
func Lookup(code, version int) (int, error) {
	if code < 0 || code >= Rows || version < 0 || version >= Columns {
		return 0, fmt.Errorf("code %d version %d: %w", code, version, ErrOutOfRange)
	}
	return Table[code][version], nil
}

// MustLookup is Lookup for indexes already known to be in range, such as
// values masked out of a header byte. It panics otherwise.
func MustLookup(code, version int) int {
	v, err := Lookup(code, version)
	if err != nil {
		panic(err)
	}
	return v
}
