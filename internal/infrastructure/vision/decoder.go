package vision

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"assistive-vision/internal/domain/port"
)

// ImageDecoder читает изображения с диска через imaging.
type ImageDecoder struct{}

// NewImageDecoder создаёт декодер с учётом EXIF-ориентации.
func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{}
}

// Decode открывает файл и декодирует его в image.Image.
func (d *ImageDecoder) Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode image %q: empty image", path)
	}
	return img, nil
}

// Проверка реализации интерфейса
var _ port.ImageDecoder = (*ImageDecoder)(nil)
