package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"interstellar/pkg/render"
)

// OpenGLRenderer uploads frames to a texture and draws them on a
// fullscreen quad
type OpenGLRenderer struct {
	width  int // framebuffer size
	height int

	shaderProgram uint32
	quadVAO       uint32
	quadVBO       uint32
	frameTexture  uint32
	texWidth      int
	texHeight     int

	scaleLocation   int32
	textureLocation int32

	mutex sync.Mutex
}

// NewOpenGLRenderer creates a renderer for a framebuffer of the given size.
// A GL context must be current.
func NewOpenGLRenderer(width, height int) (*OpenGLRenderer, error) {
	r := &OpenGLRenderer{
		width:  width,
		height: height,
	}

	if err := r.initOpenGL(); err != nil {
		return nil, err
	}

	return r, nil
}

// initOpenGL initializes OpenGL resources
func (r *OpenGLRenderer) initOpenGL() error {
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	var err error
	if r.shaderProgram, err = createShaderProgram(blitVertexShaderSource, blitFragmentShaderSource); err != nil {
		return err
	}

	gl.UseProgram(r.shaderProgram)
	r.scaleLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("scale\x00"))
	r.textureLocation = gl.GetUniformLocation(r.shaderProgram, gl.Str("frameTexture\x00"))

	r.setupScreenQuad()

	gl.GenTextures(1, &r.frameTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.frameTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	return nil
}

// setupScreenQuad creates a full-screen quad
func (r *OpenGLRenderer) setupScreenQuad() {
	vertices := []float32{
		// Positions // Texture coords
		-1.0, -1.0, 0.0, 1.0,
		1.0, -1.0, 1.0, 1.0,
		1.0, 1.0, 1.0, 0.0,
		-1.0, 1.0, 0.0, 0.0,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	// Shaders are owned by the program once linked
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
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

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}

// UpdateResolution updates the framebuffer size used for the viewport
func (r *OpenGLRenderer) UpdateResolution(width, height int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.width = width
	r.height = height
}

// Render uploads the frame and draws it letterboxed
func (r *OpenGLRenderer) Render(frame *render.Frame) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if frame == nil || len(frame.Pix) == 0 {
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.frameTexture)
	if frame.Width != r.texWidth || frame.Height != r.texHeight {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(frame.Width), int32(frame.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
		r.texWidth = frame.Width
		r.texHeight = frame.Height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(frame.Width), int32(frame.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
	}

	sx, sy := letterbox(frame.Width, frame.Height, r.width, r.height)

	gl.UseProgram(r.shaderProgram)
	gl.Uniform1i(r.textureLocation, 0)
	gl.Uniform2f(r.scaleLocation, sx, sy)

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
}

// letterbox returns the quad scale that fits the frame into the window
// without stretching
func letterbox(frameW, frameH, winW, winH int) (float32, float32) {
	if frameW <= 0 || frameH <= 0 || winW <= 0 || winH <= 0 {
		return 1, 1
	}
	frameAspect := float32(frameW) / float32(frameH)
	winAspect := float32(winW) / float32(winH)
	if frameAspect > winAspect {
		return 1, winAspect / frameAspect
	}
	return frameAspect / winAspect, 1
}

// Close releases all OpenGL resources
func (r *OpenGLRenderer) Close() {
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteTextures(1, &r.frameTexture)
	gl.DeleteProgram(r.shaderProgram)
}
