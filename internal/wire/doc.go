// Package wire encodes a parameter record as a tagged binary frame.
//
// # Frame Format
//
//	offset 0..4    "cfg1"            format/version tag (ASCII)
//	offset 4..8    uint32            total frame length L = 8 + S
//	offset 8..L    int16 * count     slot values in schema order, S = 2*count
//
// Integers are little-endian and packed with no padding. The length field is
// authoritative for framing on a byte stream.
//
// Slots are matched by position only. A receiver built from a reordered
// schema will silently map values onto the wrong fields; the text format
// matches by name and does not share this property.
package wire
