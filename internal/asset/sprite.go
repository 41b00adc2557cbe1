package asset

// Animation is a run of frames inside a Sprite: Count frames starting at Start.
type Animation struct {
	Start int `yaml:"start"`
	Count int `yaml:"count"`
}

// Sprite wraps a set of frames with a position and animation timing.
type Sprite struct {
	x, y       uint8
	frames     []Img
	anims      []Animation
	current    int
	frame      int
	sinceFrame float64
	framerate  float64
}

// NewSprite builds a sprite. Without animations every frame is treated as
// one animation.
func NewSprite(x, y uint8, frames []Img, anims []Animation, framerate float64) *Sprite {
	if len(anims) == 0 && len(frames) > 0 {
		anims = []Animation{{Start: 0, Count: len(frames)}}
	}
	return &Sprite{x: x, y: y, frames: frames, anims: anims, framerate: framerate}
}

// Animate advances the current animation once enough time has accumulated.
func (s *Sprite) Animate(dt float64) {
	if len(s.frames) == 0 || len(s.anims) == 0 || s.framerate <= 0 {
		return
	}
	if s.sinceFrame+dt < 1/s.framerate {
		s.sinceFrame += dt
		return
	}
	a := s.anims[s.current]
	if s.frame+1 < a.Start+a.Count && s.frame+1 < len(s.frames) {
		s.frame++
	} else {
		s.frame = a.Start
	}
	s.sinceFrame = 0
}

// SetAnimation switches to animation i and rewinds to its first frame.
// Out-of-range indexes are ignored.
func (s *Sprite) SetAnimation(i int) {
	if i < 0 || i >= len(s.anims) {
		return
	}
	s.current = i
	s.frame = s.anims[i].Start
	s.sinceFrame = 0
}

func (s *Sprite) Pos() (uint8, uint8) { return s.x, s.y }

func (s *Sprite) SetPos(x, y uint8) {
	s.x, s.y = x, y
}

// CurrentFrame returns the frame to draw, or an empty Img.
func (s *Sprite) CurrentFrame() Img {
	if s.frame < 0 || s.frame >= len(s.frames) {
		return Img{}
	}
	return s.frames[s.frame]
}

// FrameIndex returns the index of the current frame.
func (s *Sprite) FrameIndex() int { return s.frame }

func (s *Sprite) Width() int  { return s.CurrentFrame().Width() }
func (s *Sprite) Height() int { return s.CurrentFrame().Height() }

// Frames returns the number of frames.
func (s *Sprite) Frames() int { return len(s.frames) }
