package port

import (
	"context"
	"image"
)

// SceneClassifier интерфейс классификатора сцены
type SceneClassifier interface {
	// Classify возвращает метку top-1 для изображения
	Classify(ctx context.Context, img image.Image) (string, error)
}
