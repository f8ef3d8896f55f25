package graphics

// BlendMode matches the sfBlendMode enumeration.
type BlendMode int32

const (
	BlendAlpha BlendMode = iota
	BlendAdd
	BlendMultiply
	BlendNone
)

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	case BlendNone:
		return "none"
	default:
		return "unknown"
	}
}

// RenderStates configures a draw call. Texture and Shader may be nil. The
// zero value draws with alpha blending and no transform: an all-zero
// Transform is treated as Identity, so RenderStates{} and
// DefaultRenderStates() are equivalent.
type RenderStates struct {
	BlendMode BlendMode
	Transform Transform
	Texture   *Texture
	Shader    *Shader
}

// DefaultRenderStates uses alpha blending and the identity transform.
func DefaultRenderStates() RenderStates {
	return RenderStates{BlendMode: BlendAlpha, Transform: Identity}
}

// renderStatesC matches sfRenderStates.
type renderStatesC struct {
	BlendMode BlendMode
	Transform Transform
	Texture   uintptr
	Shader    uintptr
}

// native marshals s for one call. The caller keeps s alive until the call
// returns so the texture and shader are not collected mid-draw. An all-zero
// Transform, as in RenderStates{}, is sent as Identity.
func (s RenderStates) native() *renderStatesC {
	c := &renderStatesC{BlendMode: s.BlendMode, Transform: s.Transform}
	if c.Transform == (Transform{}) {
		c.Transform = Identity
	}
	if s.Texture != nil {
		c.Texture = s.Texture.ptr()
	}
	if s.Shader != nil {
		c.Shader = s.Shader.ptr()
	}
	return c
}
