//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"

	"assistive-vision/internal/domain/entity"
)

// YOLODetector заглушка детектора для сборки без OpenCV.
type YOLODetector struct {
	cfg DetectorConfig
}

// NewYOLODetector возвращает ошибку, если сборка без тега gocv.
func NewYOLODetector(cfg DetectorConfig) (*YOLODetector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return nil, errors.New("gocv build tag is not enabled")
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *YOLODetector) Detect(ctx context.Context, img image.Image) ([]entity.Detection, error) {
	_ = ctx
	_ = img
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не делает.
func (d *YOLODetector) Close() error {
	return nil
}
