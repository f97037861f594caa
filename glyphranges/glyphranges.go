// Package glyphranges builds the zero-terminated glyph range lists
// that FontConfig.GlyphRanges points at: inclusive [lo, hi] code point
// pairs followed by a single zero.
package glyphranges

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Default is the range the native library itself falls back to:
// Basic Latin plus Latin-1 Supplement.
func Default() []uint16 {
	return []uint16{0x0020, 0x00FF, 0}
}

// Latin covers the Unicode Latin script within the basic multilingual
// plane.
func Latin() []uint16 {
	return Build(unicode.Latin)
}

// Build flattens tables into the pair list format. Tables are merged
// first, so overlapping inputs are fine. Code points above 0xFFFF do
// not fit a 16-bit glyph index and are dropped.
func Build(tables ...*unicode.RangeTable) []uint16 {
	merged := rangetable.Merge(tables...)

	var out []uint16
	for _, r := range merged.R16 {
		if r.Stride == 1 {
			out = append(out, r.Lo, r.Hi)
			continue
		}
		// Strided ranges become singleton pairs.
		for c := uint32(r.Lo); c <= uint32(r.Hi); c += uint32(r.Stride) {
			out = append(out, uint16(c), uint16(c))
		}
	}
	return append(out, 0)
}
