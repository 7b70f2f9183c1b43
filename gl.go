package main

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

type Texture struct {
	tex  uint32
	size Size
}

func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
}

func CreateTexture() (*Texture, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return nil, fmt.Errorf("glGenTextures failed: 0x%x", gl.GetError())
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return &Texture{tex: tex}, nil
}

// UploadRGBA replaces the texture contents with width*height RGBA pixels.
// Storage is only reallocated when the size changes.
func (t *Texture) UploadRGBA(width, height int, pix []uint8) {
	if len(pix) < 4*width*height || width == 0 || height == 0 {
		return
	}
	t.Bind()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	if t.size.X != width || t.size.Y != height {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
			int32(width), int32(height),
			0, gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pix))
		t.size = Size{X: width, Y: height}
		return
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(width), int32(height),
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pix))
}

func (t *Texture) Close() error {
	if t.tex != 0 {
		gl.DeleteTextures(1, &t.tex)
		t.tex = 0
	}
	return nil
}

type Shader struct {
	shader uint32
}

func GetShaderInfoLog(shader uint32) string {
	var length int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetShaderInfoLog(shader, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateShader(shaderType uint32, source string) (Shader, error) {
	shader := gl.CreateShader(shaderType)
	data, free := gl.Strs(source)
	defer free()
	length := int32(len(source))
	gl.ShaderSource(shader, 1, data, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return Shader{}, fmt.Errorf("shader compilation failed: %s", msg)
	}
	return Shader{shader}, nil
}

func (s *Shader) Close() error {
	if s.shader != 0 {
		gl.DeleteShader(s.shader)
		s.shader = 0
	}
	return nil
}

type Program struct {
	program        uint32
	vertexShader   Shader
	fragmentShader Shader
}

func GetProgramInfoLog(program uint32) string {
	var length int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := make([]uint8, length)
	var logLen int32
	gl.GetProgramInfoLog(program, length, &logLen, &log[0])
	return string(log[:logLen])
}

func CreateProgram(vertexShader string, fragmentShader string) (*Program, error) {
	vs, err := CreateShader(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := CreateShader(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		vs.Close()
		return nil, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs.shader)
	gl.AttachShader(program, fs.shader)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		vs.Close()
		fs.Close()
		return nil, fmt.Errorf("program link failed: %s", msg)
	}
	return &Program{program, vs, fs}, nil
}

func (p *Program) GetAttribLocation(name string) int32 {
	return gl.GetAttribLocation(p.program, gl.Str(name+"\x00"))
}

func (p *Program) GetUniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

// VertexAttrib points attribute loc at client memory with the given stride.
func VertexAttrib(loc int32, size int32, stride uintptr, ptr unsafe.Pointer) {
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointer(uint32(loc), size, gl.FLOAT, false, int32(stride), ptr)
}

func (p *Program) Close() error {
	if err := p.vertexShader.Close(); err != nil {
		return err
	}
	if err := p.fragmentShader.Close(); err != nil {
		return err
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
	return nil
}

// checkGLError returns the first pending GL error, if any.
func checkGLError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%x", op, code)
	}
	return nil
}
