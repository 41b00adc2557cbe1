package render

import (
	"fmt"
	"image/color"
)

// PaletteSize is the number of opaque colors. Index 15 is transparent.
const PaletteSize = 15

const transparent = 15

// Palette maps 4-bit pixel values to colors.
type Palette [PaletteSize]color.RGBA

// DefaultPalette is used when no palette is configured.
func DefaultPalette() Palette {
	return Palette{
		{0x74, 0xDC, 0x20, 0xFF},
		{0xCE, 0xB2, 0x7E, 0xFF},
		{0xD4, 0x3B, 0x3E, 0xFF},
		{0xA6, 0x37, 0x4F, 0xFF},
		{0xC6, 0x6C, 0x45, 0xFF},
		{0xC2, 0x9F, 0x6E, 0xFF},
		{0xB7, 0xA6, 0x75, 0xFF},
		{0xA5, 0xA1, 0x75, 0xFF},
		{0xF5, 0xC3, 0x5C, 0xFF},
		{0xD5, 0x8E, 0x55, 0xFF},
		{0x8B, 0x84, 0x4C, 0xFF},
		{0xAC, 0xA4, 0x7C, 0xFF},
		{0xA3, 0x7F, 0x59, 0xFF},
		{0xB0, 0x6C, 0x4C, 0xFF},
		{0x40, 0x43, 0x37, 0xFF},
	}
}

// PaletteFrom builds a Palette from exactly PaletteSize colors.
func PaletteFrom(colors []color.RGBA) (Palette, error) {
	var p Palette
	if len(colors) != PaletteSize {
		return p, fmt.Errorf("palette needs %d colors, got %d", PaletteSize, len(colors))
	}
	copy(p[:], colors)
	return p, nil
}
