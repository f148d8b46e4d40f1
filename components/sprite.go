package components

import (
	"github.com/lunamare/inkslime/engine"
)

// Sprite is the render invocation target: a glyph drawn at the owner's
// position by the rendering collaborator. The core never draws; it only
// hands the surface through.
type Sprite struct {
	engine.BaseComponent

	Glyph rune
	Layer int

	// OffsetY shifts the draw position, used for the sinking-ship visual.
	OffsetY float64
}

func NewSprite(glyph rune, layer int) *Sprite {
	return &Sprite{Glyph: glyph, Layer: layer}
}

func (s *Sprite) Kind() engine.Kind { return engine.KindSprite }

func (s *Sprite) Render(surface engine.Surface) {
	t := transformOf(s.Owner())
	if t == nil {
		return
	}
	// Keep the sink offset in step with the load component if present.
	if owner := s.Owner(); owner != nil {
		if c, ok := owner.Component(engine.KindInkLoad); ok {
			if load, ok := c.(*InkLoad); ok {
				s.OffsetY = load.SinkOffset()
			}
		}
	}
	surface.Draw(t.Position.X, t.Position.Y+s.OffsetY, s.Glyph)
}

func (s *Sprite) Reset() {
	s.OffsetY = 0
}
