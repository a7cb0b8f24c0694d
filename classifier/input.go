package classifier

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/webp"
)

// DecodeImage accepts the supported image input forms: a decoded
// image.Image, an io.Reader, raw encoded bytes, or a file path.
func DecodeImage(src any) (image.Image, error) {
	switch v := src.(type) {
	case image.Image:
		return v, nil
	case io.Reader:
		img, _, err := image.Decode(v)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	case []byte:
		img, _, err := image.Decode(bytes.NewReader(v))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return img, nil
	case string:
		f, err := os.Open(v)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", v, err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported image input type %T", src)
	}
}
