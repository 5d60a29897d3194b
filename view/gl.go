//go:build gl

package view

import (
	"context"
	"runtime"
	"strings"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
	"github.com/sheikhrachel/go-gol-mesh/utils"
)

const (
	vertexShaderSource = `
	#version 410
	layout(location = 0) in vec3 position;
	void main() {
		gl_Position = vec4(position, 1.0);
	}` + "\x00"

	fragmentShaderSource = `
	#version 410
	out vec4 color;
	void main() {
		color = vec4(1.0, 0.5, 0.2, 1.0);
	}` + "\x00"
)

func init() {
	// GLFW requires the main thread to be locked
	runtime.LockOSThread()
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("[compileShader] %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func newProgram() (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, errors.Errorf("[newProgram] link failed: %v", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

// meshBuffer owns the vertex array and buffer the mesh is streamed into
type meshBuffer struct {
	vao, vbo uint32
	count    int32
}

func newMeshBuffer() *meshBuffer {
	b := &meshBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, model.FloatsPerVertex, gl.FLOAT, false, model.FloatsPerVertex*4, unsafe.Pointer(nil))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

func (b *meshBuffer) upload(vertices []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.count = int32(len(vertices) / model.FloatsPerVertex)
}

func (b *meshBuffer) draw(program uint32) {
	gl.UseProgram(program)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *meshBuffer) release() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

// RunGL opens an OpenGL 4.1 core window and drives sim until the window
// closes, Esc is pressed, ctx is cancelled or the generation limit is reached.
// It must be called from the main goroutine.
func RunGL(ctx context.Context, sim Simulation, opts WindowOptions) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "[RunGL] failed to init glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(opts.Size, opts.Size, opts.Title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "[RunGL] failed to create window")
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press && (key == glfw.KeyEscape || key == glfw.KeyQ) {
			w.SetShouldClose(true)
		}
	})

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "[RunGL] failed to init gl")
	}

	program, err := newProgram()
	if err != nil {
		return err
	}
	defer gl.DeleteProgram(program)

	buf := newMeshBuffer()
	defer buf.release()
	buf.upload(sim.EmitMesh())

	gate := utils.NewFrameGate(opts.GenerationsPerSecond)
	for !window.ShouldClose() && ctx.Err() == nil && !done(sim, opts.MaxGenerations) {
		glfw.WaitEventsTimeout(gate.Remaining(time.Now()).Seconds())
		if !gate.Ready(time.Now()) {
			continue
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(background[0], background[1], background[2], background[3])

		sim.Advance()
		buf.upload(sim.EmitMesh())

		gl.Clear(gl.COLOR_BUFFER_BIT)
		buf.draw(program)
		window.SwapBuffers()
	}
	return nil
}
