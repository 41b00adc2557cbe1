// Package asset decodes the nibble-packed image format carried inside
// actions. Every pixel is a 4-bit palette index, two pixels per byte.
package asset

import "errors"

// ErrTruncated is returned when a buffer is too short to hold the header.
var ErrTruncated = errors.New("asset: buffer shorter than 4-byte header")

const headerLen = 4

// Img is an immutable image: a width in pixels and packed pixel bytes.
// The height is implied by the length of the pixel data.
type Img struct {
	width  int
	pixels []byte
}

// NewImg wraps already packed pixels. The slice is not copied.
func NewImg(width int, pixels []byte) Img {
	return Img{width: width, pixels: pixels}
}

// DecodeImg parses the on-disk layout: a 4-byte width header followed by
// pixel bytes.
func DecodeImg(buf []byte) (Img, error) {
	if len(buf) < headerLen {
		return Img{}, ErrTruncated
	}
	pixels := make([]byte, len(buf)-headerLen)
	copy(pixels, buf[headerLen:])
	return Img{width: decodeWidth(buf), pixels: pixels}, nil
}

func decodeWidth(buf []byte) int {
	w := 0
	for i := 0; i < headerLen; i++ {
		w |= int(buf[i]) << (3 - i)
	}
	return w
}

func (i Img) Width() int { return i.width }

// Pixels returns the packed pixel bytes. Callers must not modify them.
func (i Img) Pixels() []byte { return i.pixels }

// RowBytes is the number of packed bytes per row.
func (i Img) RowBytes() int {
	return (i.width + 1) / 2
}

// Height is the number of rows, counting a trailing partial row.
func (i Img) Height() int {
	rb := i.RowBytes()
	if rb == 0 {
		return 0
	}
	return (len(i.pixels) + rb - 1) / rb
}

// Empty reports whether the image has no drawable pixels.
func (i Img) Empty() bool {
	return i.width == 0 || len(i.pixels) == 0
}

// Rows starts a new lazy cursor over the image rows.
func (i Img) Rows() *Rows {
	return &Rows{pixels: i.pixels, step: i.RowBytes()}
}

// Rows yields successive rows of packed bytes. It is finite and cannot be
// rewound; once Next returns false it keeps returning false.
type Rows struct {
	pixels []byte
	step   int
	pos    int
	done   bool
}

// Next returns the next row. The returned slice aliases the image data.
func (r *Rows) Next() ([]byte, bool) {
	if r.done || r.step == 0 || r.pos >= len(r.pixels) {
		r.done = true
		return nil, false
	}
	end := r.pos + r.step
	if end > len(r.pixels) {
		end = len(r.pixels)
	}
	row := r.pixels[r.pos:end]
	r.pos = end
	return row, true
}
