package coverflow

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageSource is an ItemSource over a fixed list of images. Images are shared
// between frames, so the recycled cover is never modified.
type ImageSource struct {
	images []*ebiten.Image
}

var _ ItemSource = (*ImageSource)(nil)

// NewImageSource creates a source showing images in order.
func NewImageSource(images []*ebiten.Image) *ImageSource {
	return &ImageSource{images: images}
}

// Count returns the number of images.
func (s *ImageSource) Count() int {
	return len(s.images)
}

// CoverAt returns image index.
func (s *ImageSource) CoverAt(index int, _ Cover) Cover {
	return s.images[index]
}

// Append adds an image at the end of the list.
func (s *ImageSource) Append(img *ebiten.Image) {
	s.images = append(s.images, img)
}

// LoadCovers decodes image files into ebiten images. PNG, JPEG, GIF, BMP,
// WebP and TGA files are understood.
func LoadCovers(paths ...string) ([]*ebiten.Image, error) {
	out := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := decodeImageFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, ebiten.NewImageFromImage(img))
	}
	return out, nil
}

// decodeImageFile reads and decodes one image file.
func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coverflow: open cover %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("coverflow: decode cover %s: %w", path, err)
	}
	return img, nil
}
