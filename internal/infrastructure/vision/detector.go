//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"assistive-vision/internal/domain/entity"
	"assistive-vision/internal/domain/port"
)

// YOLODetector детектор объектов на YOLOv5 (ONNX) через OpenCV DNN.
type YOLODetector struct {
	cfg DetectorConfig
	net gocv.Net
}

// NewYOLODetector загружает сеть детектора. Ошибка загрузки фатальна для процесса.
func NewYOLODetector(cfg DetectorConfig) (*YOLODetector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	net := gocv.ReadNetFromONNX(cfg.ModelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load detector model %q", cfg.ModelPath)
	}
	if err := net.SetPreferableBackend(gocv.NetBackendDefault); err != nil {
		net.Close()
		return nil, fmt.Errorf("set backend: %w", err)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetCPU); err != nil {
		net.Close()
		return nil, fmt.Errorf("set target: %w", err)
	}

	return &YOLODetector{cfg: cfg, net: net}, nil
}

// Detect прогоняет изображение через сеть и возвращает объекты выше порога уверенности.
func (d *YOLODetector) Detect(ctx context.Context, img image.Image) ([]entity.Detection, error) {
	_ = ctx

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	size := image.Pt(d.cfg.InputSize, d.cfg.InputSize)
	blob := gocv.BlobFromImage(mat, 1.0/255.0, size, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	out := d.net.Forward("")
	defer out.Close()

	// Выход yolov5: [1, rows, 5+classes].
	dims := out.Size()
	if len(dims) != 3 {
		return nil, fmt.Errorf("unexpected detector output shape %v", dims)
	}
	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read detector output: %w", err)
	}

	candidates := decodeYOLOv5(data, dims[1], dims[2], d.cfg.Labels, d.cfg.ConfidenceThreshold, d.cfg.InputSize, mat.Cols(), mat.Rows())
	return suppressOverlaps(candidates, d.cfg.NMSThreshold), nil
}

// Close освобождает сеть.
func (d *YOLODetector) Close() error {
	return d.net.Close()
}

// Проверка реализации интерфейса
var _ port.ObjectDetector = (*YOLODetector)(nil)
