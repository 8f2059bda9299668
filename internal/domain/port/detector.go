package port

import (
	"context"
	"image"

	"assistive-vision/internal/domain/entity"
)

// ObjectDetector интерфейс детектора объектов
type ObjectDetector interface {
	// Detect возвращает объекты, прошедшие порог уверенности детектора
	Detect(ctx context.Context, img image.Image) ([]entity.Detection, error)
}
