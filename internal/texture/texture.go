// Package texture uploads decoded images as OpenGL 2D and cubemap textures.
package texture

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/toxichemicals/GO/courtyard/internal/imageio"
)

// ErrUnsupportedChannels is returned for pixel data that is not 1, 3 or 4
// channels wide.
var ErrUnsupportedChannels = errors.New("unsupported channel count")

// Texture is a GPU texture handle and the target it was created for.
type Texture struct {
	ID     uint32
	Target uint32
}

// Filter selects the minification filter of a 2D texture.
type Filter int

const (
	// Mipmapped builds mipmaps and samples them trilinearly.
	Mipmapped Filter = iota
	// Linear samples the base level only.
	Linear
)

// Bind makes t current on the given texture unit.
func (t Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// Format maps a channel count to the matching GL pixel format.
func Format(channels int) (uint32, error) {
	switch channels {
	case 1:
		return gl.RED, nil
	case 3:
		return gl.RGB, nil
	case 4:
		return gl.RGBA, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
}

// Load2D decodes path and uploads it with repeat wrapping and mipmaps. On
// error no GPU object is created.
func Load2D(path string, opts imageio.Options) (Texture, error) {
	return load2D(path, opts, Mipmapped)
}

func load2D(path string, opts imageio.Options, filter Filter) (Texture, error) {
	img, err := imageio.Decode(path, opts)
	if err != nil {
		return Texture{}, err
	}
	format, err := Format(img.Channels)
	if err != nil {
		return Texture{}, fmt.Errorf("texture %s: %w", path, err)
	}

	t := Texture{Target: gl.TEXTURE_2D}
	gl.GenTextures(1, &t.ID)
	upload2D(t.ID, img, format, filter)
	return t, nil
}

// upload2D (re)fills the texture id and sets its sampling state.
func upload2D(id uint32, img *imageio.Image, format uint32, filter Filter) {
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(img.Width), int32(img.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	if filter == Mipmapped {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// LoadCubemap uploads six faces in +X, -X, +Y, -Y, +Z, -Z order. Every face
// is decoded before any GPU object is created.
func LoadCubemap(faces [6]string) (Texture, error) {
	var imgs [6]*imageio.Image
	for i, path := range faces {
		img, err := imageio.Decode(path, imageio.Options{ForceRGB: true})
		if err != nil {
			return Texture{}, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		imgs[i] = img
	}

	t := Texture{Target: gl.TEXTURE_CUBE_MAP}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, img := range imgs {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGB, int32(img.Width), int32(img.Height), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	setCubemapParams()
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return t, nil
}

func setCubemapParams() {
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
}
