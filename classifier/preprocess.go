package classifier

import (
	"image"

	"github.com/disintegration/imaging"
)

// Preprocess scales the shorter side of img to size, center-crops to
// size x size and returns the pixels as NCHW float32. With normalize the
// channels are mapped to [-1,1], otherwise to [0,1].
func Preprocess(img image.Image, size int, normalize bool) []float32 {
	img = imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	out := make([]float32, 3*size*size)
	rBase := 0
	gBase := size * size
	bBase := 2 * size * size

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			fr := float32(r) / 65535.0
			fg := float32(g) / 65535.0
			fb := float32(b) / 65535.0

			if normalize {
				fr = fr*2 - 1
				fg = fg*2 - 1
				fb = fb*2 - 1
			}

			out[rBase] = fr
			out[gBase] = fg
			out[bBase] = fb

			rBase++
			gBase++
			bBase++
		}
	}
	return out
}
