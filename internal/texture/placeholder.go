package texture

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/toxichemicals/GO/courtyard/internal/imageio"
)

// checker is a 2x2 magenta and black RGB tile.
func checker() *imageio.Image {
	return &imageio.Image{
		Width:    2,
		Height:   2,
		Channels: 3,
		Pix: []byte{
			255, 0, 255, 0, 0, 0,
			0, 0, 0, 255, 0, 255,
		},
	}
}

// Placeholder is a checker texture substituted for a surface whose image
// failed to load.
func Placeholder() Texture {
	t := Texture{Target: gl.TEXTURE_2D}
	gl.GenTextures(1, &t.ID)
	upload2D(t.ID, checker(), gl.RGB, Linear)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// PlaceholderCubemap puts the checker on all six faces.
func PlaceholderCubemap() Texture {
	img := checker()
	t := Texture{Target: gl.TEXTURE_CUBE_MAP}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i := uint32(0); i < 6; i++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i, 0, gl.RGB, int32(img.Width), int32(img.Height), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	setCubemapParams()
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return t
}
