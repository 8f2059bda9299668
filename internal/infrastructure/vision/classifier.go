//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"gocv.io/x/gocv"

	"assistive-vision/internal/domain/port"
)

// SceneClassifier классификатор сцены на EfficientNet-B0 (ONNX).
type SceneClassifier struct {
	net    gocv.Net
	labels []string
}

// NewSceneClassifier загружает сеть классификатора.
func NewSceneClassifier(modelPath string, labels []string) (*SceneClassifier, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load classifier model %q", modelPath)
	}
	return &SceneClassifier{net: net, labels: labels}, nil
}

// Classify возвращает метку top-1.
func (c *SceneClassifier) Classify(ctx context.Context, img image.Image) (string, error) {
	_ = ctx

	tensor := PrepareClassifierInput(img)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&tensor.Data[0])), len(tensor.Data)*4)

	mat, err := gocv.NewMatFromBytes(tensor.Height, tensor.Width, gocv.MatTypeCV32FC3, raw)
	if err != nil {
		return "", fmt.Errorf("build input: %w", err)
	}
	defer mat.Close()

	// HWC -> NCHW без дополнительного масштабирования: тензор уже нормализован.
	blob := gocv.BlobFromImage(mat, 1.0, image.Pt(tensor.Width, tensor.Height), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	c.net.SetInput(blob, "")
	out := c.net.Forward("")
	defer out.Close()
	runtime.KeepAlive(tensor.Data)

	scores, err := out.DataPtrFloat32()
	if err != nil {
		return "", fmt.Errorf("read classifier output: %w", err)
	}

	return TopLabel(scores, c.labels), nil
}

// Close освобождает сеть.
func (c *SceneClassifier) Close() error {
	return c.net.Close()
}

// Проверка реализации интерфейса
var _ port.SceneClassifier = (*SceneClassifier)(nil)
