package asset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDecodeImgHeader(t *testing.T) {
	// width = 1<<3 | 0<<2 | 0<<1 | 0 = 8
	img, err := DecodeImg([]byte{1, 0, 0, 0, 0x12, 0x34, 0x56, 0x78, 0x9A})
	if err != nil {
		t.Fatalf("DecodeImg: %v", err)
	}
	if img.Width() != 8 {
		t.Errorf("width = %d, want 8", img.Width())
	}
	if len(img.Pixels()) != 5 {
		t.Errorf("pixels = %d bytes, want 5", len(img.Pixels()))
	}
	if img.Height() != 2 {
		t.Errorf("height = %d, want 2", img.Height())
	}
}

func TestDecodeWidthPacking(t *testing.T) {
	tests := []struct {
		hdr  []byte
		want int
	}{
		{[]byte{0, 0, 0, 16}, 16},
		{[]byte{0, 0, 8, 0}, 16},
		{[]byte{0, 4, 0, 0}, 16},
		{[]byte{2, 0, 0, 0}, 16},
		{[]byte{0, 0, 0, 0}, 0},
		{[]byte{1, 1, 1, 1}, 15},
	}
	for _, tt := range tests {
		if got := decodeWidth(tt.hdr); got != tt.want {
			t.Errorf("decodeWidth(%v) = %d, want %d", tt.hdr, got, tt.want)
		}
	}
}

func TestDecodeImgTruncated(t *testing.T) {
	_, err := DecodeImg([]byte{1, 2, 3})
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestRowsAreLazyAndFinal(t *testing.T) {
	img := NewImg(4, []byte{1, 2, 3, 4, 5})
	rows := img.Rows()
	want := [][]byte{{1, 2}, {3, 4}, {5}}
	for i, w := range want {
		row, ok := rows.Next()
		if !ok {
			t.Fatalf("row %d missing", i)
		}
		if string(row) != string(w) {
			t.Fatalf("row %d = %v, want %v", i, row, w)
		}
	}
	for i := 0; i < 3; i++ {
		if _, ok := rows.Next(); ok {
			t.Fatal("exhausted cursor produced another row")
		}
	}

	// A fresh cursor starts over; the image itself is untouched.
	if row, ok := img.Rows().Next(); !ok || row[0] != 1 {
		t.Errorf("new cursor first row = %v, %v", row, ok)
	}
}

func TestOddWidthRoundsUp(t *testing.T) {
	img := NewImg(3, []byte{1, 2, 3, 4})
	if img.RowBytes() != 2 || img.Height() != 2 {
		t.Errorf("row bytes = %d, height = %d, want 2, 2", img.RowBytes(), img.Height())
	}
}

func TestZeroWidthHasNoRows(t *testing.T) {
	img := NewImg(0, []byte{1, 2})
	if _, ok := img.Rows().Next(); ok {
		t.Error("zero-width image produced a row")
	}
	if !img.Empty() || img.Height() != 0 {
		t.Error("zero-width image should be empty")
	}
}

func TestLoadImgOrEmpty(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	img := LoadImgOrEmpty(filepath.Join(t.TempDir(), "missing.u4i"), zap.New(core))
	if !img.Empty() {
		t.Error("missing file should yield an empty image")
	}
	if logs.Len() != 1 {
		t.Errorf("logged %d warnings, want 1", logs.Len())
	}

	path := filepath.Join(t.TempDir(), "ok.u4i")
	if err := os.WriteFile(path, []byte{0, 0, 0, 2, 0xAB}, 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImg(path)
	if err != nil {
		t.Fatalf("LoadImg: %v", err)
	}
	if img.Width() != 2 || img.Pixels()[0] != 0xAB {
		t.Errorf("loaded width %d pixels %v", img.Width(), img.Pixels())
	}
}
