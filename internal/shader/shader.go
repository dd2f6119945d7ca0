// Package shader builds GLSL programs from source files.
package shader

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex+fragment program.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// Load reads, compiles and links the two stages.
func Load(vertexPath, fragmentPath string) (*Program, error) {
	vs, err := readSource(vertexPath)
	if err != nil {
		return nil, err
	}
	fs, err := readSource(fragmentPath)
	if err != nil {
		return nil, err
	}
	p, err := New(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// New compiles in-memory sources.
func New(vertexSource, fragmentSource string) (*Program, error) {
	id, err := compileProgram(terminate(vertexSource), terminate(fragmentSource))
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, uniforms: make(map[string]int32)}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(terminate(name)))
	p.uniforms[name] = loc
	return loc
}

func readSource(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(src), nil
}

// terminate appends the NUL the GL string helpers expect.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// compileProgram compiles vertex and fragment shaders into an OpenGL program.
func compileProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	glShaderSource(vertexShader, vertexShaderSource)
	gl.CompileShader(vertexShader)
	if err := checkShaderCompileStatus(vertexShader, "vertex"); err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	glShaderSource(fragmentShader, fragmentShaderSource)
	gl.CompileShader(fragmentShader)
	if err := checkShaderCompileStatus(fragmentShader, "fragment"); err != nil {
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	if err := checkProgramLinkStatus(program); err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}
	return program, nil
}

func glShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

// Query functions with the shape shared by the shader and program variants
// of glGet*iv and glGet*InfoLog.
type (
	getivFunc   func(object, pname uint32, params *int32)
	infoLogFunc func(object uint32, bufSize int32, length *int32, infoLog *uint8)
)

func checkShaderCompileStatus(shader uint32, shaderType string) error {
	return checkStatus(shader, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog,
		"failed to compile "+shaderType+" shader")
}

func checkProgramLinkStatus(program uint32) error {
	return checkStatus(program, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog,
		"failed to link program")
}

// checkStatus reads the status flag of object and, when it is false,
// returns msg with the info log attached.
func checkStatus(object, status uint32, getiv getivFunc, infoLog infoLogFunc, msg string) error {
	var ok int32
	getiv(object, status, &ok)
	if ok != gl.FALSE {
		return nil
	}

	var logLength int32
	getiv(object, gl.INFO_LOG_LENGTH, &logLength)
	buf := make([]byte, logLength+1)
	var written int32
	infoLog(object, int32(len(buf)), &written, &buf[0])
	if written < 0 || int(written) > len(buf) {
		written = 0
	}
	return fmt.Errorf("%s:\n%s", msg, strings.TrimRight(string(buf[:written]), "\x00\n"))
}
