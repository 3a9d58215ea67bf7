package header

import "fmt"

// Gender is the most significant bit of a robot header.
type Gender uint8

const (
	Female Gender = 0
	Male   Gender = 1
)

func (g Gender) String() string {
	switch g {
	case Female:
		return "female"
	case Male:
		return "male"
	default:
		return fmt.Sprintf("gender(%d)", uint8(g))
	}
}

// Version is the raw 2-bit version selector (0-3). It doubles as the column
// index of the gigahertz table; Number reports the human-facing 1-4.
type Version uint8

const (
	V1 Version = iota
	V2
	V3
	V4
)

// Number returns the version as printed on the spec sheet (1-4).
func (v Version) Number() int { return int(v) + 1 }

func (v Version) String() string { return fmt.Sprintf("version %d", v.Number()) }

// Code is the low nibble, used only as a gigahertz table row index.
type Code uint8

// Header captures the fields packed into one robot byte.
type Header struct {
	Gender  Gender
	Version Version
	Active  bool
	Code    Code
}

// Field describes one fixed bit range within the byte. Bit 0 is the least
// significant bit; Shift is the position of the field's lowest bit.
type Field struct {
	Name  string
	Shift uint8
	Width uint8
}

var (
	GenderField  = Field{Name: "gender", Shift: 7, Width: 1}
	VersionField = Field{Name: "version", Shift: 5, Width: 2}
	ActiveField  = Field{Name: "active", Shift: 4, Width: 1}
	CodeField    = Field{Name: "code", Shift: 0, Width: 4}
)

// Layout lists the fields from the most significant bit down. The widths sum
// to eight and the ranges never overlap.
var Layout = []Field{GenderField, VersionField, ActiveField, CodeField}

// valueMask is the unshifted mask, 2^width - 1.
func (f Field) valueMask() uint8 {
	return uint8(1)<<f.Width - 1
}

// Mask returns the field's bits in their position within the byte.
func (f Field) Mask() uint8 {
	return f.valueMask() << f.Shift
}

// Extract shifts the field down to the low bits and masks off the rest.
func (f Field) Extract(b byte) uint8 {
	return (b >> f.Shift) & f.valueMask()
}

// Insert clears the field in b and stores v in its place. Bits of v beyond
// the field width are dropped.
func (f Field) Insert(b byte, v uint8) byte {
	return b&^f.Mask() | (v&f.valueMask())<<f.Shift
}

// Decode splits b into its header fields. Every byte decodes.
func Decode(b byte) Header {
	return Header{
		Gender:  Gender(GenderField.Extract(b)),
		Version: Version(VersionField.Extract(b)),
		Active:  ActiveField.Extract(b) == 1,
		Code:    Code(CodeField.Extract(b)),
	}
}

// Encode packs h back into a byte. Encode(Decode(b)) == b for every b.
func Encode(h Header) byte {
	var b byte
	b = GenderField.Insert(b, uint8(h.Gender))
	b = VersionField.Insert(b, uint8(h.Version))
	if h.Active {
		b = ActiveField.Insert(b, 1)
	}
	return CodeField.Insert(b, uint8(h.Code))
}

// GenderBit reads bit 7 with a single AND mask and no shift.
func GenderBit(b byte) Gender {
	if b&GenderField.Mask() == 0 {
		return Female
	}
	return Male
}
