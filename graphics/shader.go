package graphics

import (
	"io"
	"runtime"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

const shaderConstructors = "ShaderFromFile, ShaderFromMemory or ShaderFromStream"

// Shader is a GLSL program with an optional vertex and an optional fragment
// stage. There is no way to create an empty shader: the zero value panics
// on use.
type Shader struct {
	ref *handle.Ref
	// textures assigned as uniforms; the shader only stores their handles.
	textures map[string]*Texture
}

func newShader(op string, ptr uintptr) (*Shader, error) {
	if ptr == 0 {
		return nil, sferrors.Native(op, "shader failed to compile or link")
	}
	s := &Shader{ref: handle.Owned("shader", ptr, func(p uintptr) { fnShaderDestroy(p) })}
	handle.Track(s, s.ref)
	return s, nil
}

func (s *Shader) ptr() uintptr {
	return handle.Must(s.ref, "Shader", shaderConstructors)
}

// ShaderFromFile compiles shader sources from disk. Pass "" to omit a stage.
func ShaderFromFile(vertexFile, fragmentFile string) (*Shader, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	if vertexFile == "" && fragmentFile == "" {
		return nil, sferrors.Usage("ShaderFromFile", "at least one stage is required")
	}
	v, f, err := stageStrings(vertexFile, fragmentFile)
	if err != nil {
		return nil, err
	}
	ptr := fnShaderCreateFromFile(v, f)
	runtime.KeepAlive(v)
	runtime.KeepAlive(f)
	return newShader("ShaderFromFile", ptr)
}

// ShaderFromMemory compiles GLSL source strings. Pass "" to omit a stage.
func ShaderFromMemory(vertex, fragment string) (*Shader, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	if vertex == "" && fragment == "" {
		return nil, sferrors.Usage("ShaderFromMemory", "at least one stage is required")
	}
	v, f, err := stageStrings(vertex, fragment)
	if err != nil {
		return nil, err
	}
	ptr := fnShaderCreateFromMemory(v, f)
	runtime.KeepAlive(v)
	runtime.KeepAlive(f)
	return newShader("ShaderFromMemory", ptr)
}

// ShaderFromStream compiles sources read from streams. Pass nil to omit a
// stage.
func ShaderFromStream(vertex, fragment io.ReadSeeker) (*Shader, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	if vertex == nil && fragment == nil {
		return nil, sferrors.Usage("ShaderFromStream", "at least one stage is required")
	}
	var vs, fs *system.InputStreamC
	if vertex != nil {
		s, err := system.NewInputStream(vertex)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		vs = s.Native()
	}
	if fragment != nil {
		s, err := system.NewInputStream(fragment)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		fs = s.Native()
	}
	return newShader("ShaderFromStream", fnShaderCreateFromStream(vs, fs))
}

// ShaderIsAvailable reports whether the driver supports shaders at all.
func ShaderIsAvailable() bool {
	if initLibrary() != nil {
		return false
	}
	return fnShaderIsAvailable().Go()
}

// Destroy releases the program and the textures it kept alive.
func (s *Shader) Destroy() {
	if s.ref.Release() {
		s.textures = nil
	}
}

func stageStrings(vertex, fragment string) (v, f *byte, err error) {
	if v, err = ffi.CStringOrNil(vertex); err != nil {
		return nil, nil, err
	}
	if f, err = ffi.CStringOrNil(fragment); err != nil {
		return nil, nil, err
	}
	return v, f, nil
}

// withName calls fn with the shader handle and a C copy of name. A uniform
// name containing NUL panics with a usage error.
func (s *Shader) withName(name string, fn func(shader uintptr, cname *byte)) {
	p := s.ptr()
	c, err := ffi.CString(name)
	if err != nil {
		panic(err)
	}
	fn(p, c)
	runtime.KeepAlive(c)
}

func (s *Shader) SetFloatParameter(name string, x float32) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetFloatParameter(p, c, x) })
}

func (s *Shader) SetFloat2Parameter(name string, x, y float32) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetFloat2Parameter(p, c, x, y) })
}

func (s *Shader) SetFloat3Parameter(name string, x, y, z float32) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetFloat3Parameter(p, c, x, y, z) })
}

func (s *Shader) SetFloat4Parameter(name string, x, y, z, w float32) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetFloat4Parameter(p, c, x, y, z, w) })
}

func (s *Shader) SetVector2Parameter(name string, v system.Vector2f) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetVector2Parameter(p, c, v) })
}

func (s *Shader) SetVector3Parameter(name string, v system.Vector3f) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetVector3Parameter(p, c, v) })
}

// SetColorParameter sets a vec4 uniform, with components scaled to 0..1.
func (s *Shader) SetColorParameter(name string, col Color) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetColorParameter(p, c, col) })
}

// SetTransformParameter sets a mat4 uniform.
func (s *Shader) SetTransformParameter(name string, t Transform) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetTransformParameter(p, c, t) })
}

// SetTextureParameter sets a sampler2D uniform. The shader keeps t alive
// until the uniform is reassigned or the shader is destroyed.
func (s *Shader) SetTextureParameter(name string, t *Texture) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetTextureParameter(p, c, t.ptr()) })
	if s.textures == nil {
		s.textures = make(map[string]*Texture)
	}
	s.textures[name] = t
}

// SetCurrentTextureParameter binds the texture of the object being drawn to
// a sampler2D uniform.
func (s *Shader) SetCurrentTextureParameter(name string) {
	s.withName(name, func(p uintptr, c *byte) { fnShaderSetCurrentTextureParameter(p, c) })
	delete(s.textures, name)
}

// Bind makes s the current OpenGL program.
func (s *Shader) Bind() {
	fnShaderBind(s.ptr())
}

// UnbindShader clears the current OpenGL program.
func UnbindShader() {
	if initLibrary() != nil {
		return
	}
	fnShaderBind(0)
}
