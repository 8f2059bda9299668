package port

import "image"

// ImageDecoder интерфейс чтения изображения с диска
type ImageDecoder interface {
	// Decode читает и декодирует файл изображения
	Decode(path string) (image.Image, error)
}
