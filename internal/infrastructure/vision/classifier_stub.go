//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"
)

// SceneClassifier заглушка классификатора для сборки без OpenCV.
type SceneClassifier struct {
	labels []string
}

// NewSceneClassifier возвращает ошибку, если сборка без тега gocv.
func NewSceneClassifier(modelPath string, labels []string) (*SceneClassifier, error) {
	_ = modelPath
	_ = labels
	return nil, errors.New("gocv build tag is not enabled")
}

// Classify возвращает ошибку, если сборка без тега gocv.
func (c *SceneClassifier) Classify(ctx context.Context, img image.Image) (string, error) {
	_ = ctx
	_ = img
	return "", errors.New("gocv build tag is not enabled")
}

// Close ничего не делает.
func (c *SceneClassifier) Close() error {
	return nil
}
