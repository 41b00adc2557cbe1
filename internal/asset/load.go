package asset

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// LoadImg reads and decodes an image file.
func LoadImg(path string) (Img, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Img{}, fmt.Errorf("read image %s: %w", path, err)
	}
	img, err := DecodeImg(raw)
	if err != nil {
		return Img{}, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImgOrEmpty is LoadImg that logs failures and returns an empty Img.
func LoadImgOrEmpty(path string, log *zap.Logger) Img {
	img, err := LoadImg(path)
	if err != nil {
		log.Warn("image unavailable, using empty image", zap.String("path", path), zap.Error(err))
		return Img{}
	}
	return img
}

// DecodeSprite cuts the pixel stream after the header into frames of
// pixPerFrame pixels each. A trailing incomplete frame is dropped.
func DecodeSprite(buf []byte, pixPerFrame int, x, y uint8, anims []Animation, framerate float64) (*Sprite, error) {
	if len(buf) < headerLen {
		return nil, ErrTruncated
	}
	bytesPerFrame := pixPerFrame / 2
	if bytesPerFrame <= 0 {
		return nil, fmt.Errorf("pixels per frame %d too small", pixPerFrame)
	}
	width := decodeWidth(buf)
	body := buf[headerLen:]
	frames := make([]Img, 0, len(body)/bytesPerFrame)
	for off := 0; off+bytesPerFrame <= len(body); off += bytesPerFrame {
		px := make([]byte, bytesPerFrame)
		copy(px, body[off:off+bytesPerFrame])
		frames = append(frames, NewImg(width, px))
	}
	return NewSprite(x, y, frames, anims, framerate), nil
}

// LoadSprite reads a sprite sheet file. See DecodeSprite.
func LoadSprite(path string, pixPerFrame int, x, y uint8, anims []Animation, framerate float64) (*Sprite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sprite %s: %w", path, err)
	}
	s, err := DecodeSprite(raw, pixPerFrame, x, y, anims, framerate)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return s, nil
}

// LoadSpriteOrEmpty is LoadSprite that logs failures and returns a sprite
// with no frames at the requested position.
func LoadSpriteOrEmpty(path string, pixPerFrame int, x, y uint8, anims []Animation, framerate float64, log *zap.Logger) *Sprite {
	s, err := LoadSprite(path, pixPerFrame, x, y, anims, framerate)
	if err != nil {
		log.Warn("sprite unavailable, using empty sprite", zap.String("path", path), zap.Error(err))
		return NewSprite(x, y, nil, nil, 0)
	}
	return s
}
