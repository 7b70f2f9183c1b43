package main

import (
	"image"
	"unsafe"

	"github.com/cellux/juliabrot/internal/fractal"
	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"
)

const presenterVertexShader = `
precision mediump float;

uniform mat4 u_projection;
uniform mat4 u_model;

attribute vec2 a_position;
attribute vec2 a_texcoord;

varying vec2 v_texcoord;

void main() {
  gl_Position = u_projection * u_model * vec4(a_position, 0.0, 1.0);
  v_texcoord = a_texcoord;
}
` + "\x00"

const presenterFragmentShader = `
precision mediump float;

uniform sampler2D u_texture;

varying vec2 v_texcoord;

void main() {
  gl_FragColor = texture2D(u_texture, v_texcoord);
}
` + "\x00"

type quadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// Unit quad with (0,0) at the top left corner; row 0 of an uploaded
// image lands at the top of the window.
var unitQuad = [4]quadVertex{
	{position: [2]float32{0, 0}, texcoord: [2]float32{0, 0}},
	{position: [2]float32{1, 0}, texcoord: [2]float32{1, 0}},
	{position: [2]float32{0, 1}, texcoord: [2]float32{0, 1}},
	{position: [2]float32{1, 1}, texcoord: [2]float32{1, 1}},
}

// Presenter draws a rendered frame, optionally topped by a HUD strip, into
// the framebuffer of the window whose context is current.
type Presenter struct {
	program     *Program
	frameTex    *Texture
	hudTex      *Texture
	aPosition   int32
	aTexCoord   int32
	uProjection int32
	uModel      int32
	uTexture    int32
	projection  mgl.Mat4
}

func CreatePresenter() (*Presenter, error) {
	program, err := CreateProgram(presenterVertexShader, presenterFragmentShader)
	if err != nil {
		return nil, err
	}
	frameTex, err := CreateTexture()
	if err != nil {
		program.Close()
		return nil, err
	}
	hudTex, err := CreateTexture()
	if err != nil {
		frameTex.Close()
		program.Close()
		return nil, err
	}
	p := &Presenter{
		program:    program,
		frameTex:   frameTex,
		hudTex:     hudTex,
		projection: mgl.Ortho2D(0, 1, 1, 0),
	}
	p.aPosition = program.GetAttribLocation("a_position")
	p.aTexCoord = program.GetAttribLocation("a_texcoord")
	p.uProjection = program.GetUniformLocation("u_projection")
	p.uModel = program.GetUniformLocation("u_model")
	p.uTexture = program.GetUniformLocation("u_texture")
	return p, nil
}

func (p *Presenter) drawQuad(tex *Texture, model mgl.Mat4) {
	gl.ActiveTexture(gl.TEXTURE0)
	tex.Bind()
	gl.Uniform1i(p.uTexture, 0)
	gl.UniformMatrix4fv(p.uModel, 1, false, &model[0])
	stride := unsafe.Sizeof(unitQuad[0])
	VertexAttrib(p.aPosition, 2, stride, gl.Ptr(&unitQuad[0].position[0]))
	VertexAttrib(p.aTexCoord, 2, stride, gl.Ptr(&unitQuad[0].texcoord[0]))
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(unitQuad)))
}

// Draw clears the framebuffer to black and blends the frame over it, so
// transparent in-set pixels show as black. A non-nil hud is drawn along the
// top edge at its native pixel height.
func (p *Presenter) Draw(fb Size, frame *fractal.Frame, hud *image.RGBA) error {
	if fb.X <= 0 || fb.Y <= 0 {
		return nil
	}
	gl.Viewport(0, 0, int32(fb.X), int32(fb.Y))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	p.program.Use()
	gl.UniformMatrix4fv(p.uProjection, 1, false, &p.projection[0])
	if frame.Len() > 0 {
		p.frameTex.UploadRGBA(frame.Width(), frame.Height(), frame.Pix())
		p.drawQuad(p.frameTex, mgl.Ident4())
	}
	if hud != nil {
		b := hud.Bounds()
		p.hudTex.UploadRGBA(b.Dx(), b.Dy(), hud.Pix)
		model := mgl.Scale3D(float32(b.Dx())/float32(fb.X), float32(b.Dy())/float32(fb.Y), 1)
		p.drawQuad(p.hudTex, model)
	}
	return checkGLError("present")
}

func (p *Presenter) Close() error {
	p.hudTex.Close()
	p.frameTex.Close()
	return p.program.Close()
}
