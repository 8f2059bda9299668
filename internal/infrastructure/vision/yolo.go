package vision

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"assistive-vision/internal/domain/entity"
)

// DetectorConfig настройки детектора YOLOv5.
type DetectorConfig struct {
	ModelPath           string
	Labels              []string
	InputSize           int     // сторона квадратного входа сети
	ConfidenceThreshold float64 // минимальный score объекта
	NMSThreshold        float64 // порог IoU для подавления дублей
}

// DefaultDetectorConfig возвращает настройки для yolov5s.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		ModelPath:           "models/yolov5s.onnx",
		InputSize:           640,
		ConfidenceThreshold: 0.4,
		NMSThreshold:        0.45,
	}
}

// Validate проверяет, что детектор можно загрузить с этими настройками.
func (c DetectorConfig) Validate() error {
	if c.InputSize <= 0 {
		return fmt.Errorf("invalid detector input size %d", c.InputSize)
	}
	if len(c.Labels) == 0 {
		return errors.New("detector labels are empty")
	}
	return nil
}

// decodeYOLOv5 разбирает выход сети формы [rows, dims]: cx, cy, w, h, objectness, scores классов.
// Координаты переводятся из квадрата inputSize в пиксели исходного изображения imgW x imgH
// и обрезаются по его границам.
func decodeYOLOv5(data []float32, rows, dims int, labels []string, threshold float64, inputSize, imgW, imgH int) []entity.Detection {
	if dims <= 5 || inputSize <= 0 || len(data) < rows*dims {
		return nil
	}
	scaleX := float64(imgW) / float64(inputSize)
	scaleY := float64(imgH) / float64(inputSize)

	classScores := make([]float64, dims-5)
	detections := make([]entity.Detection, 0)
	for i := 0; i < rows; i++ {
		row := data[i*dims : (i+1)*dims]

		objectness := float64(row[4])
		if objectness < threshold {
			continue
		}

		for j := range classScores {
			classScores[j] = float64(row[5+j])
		}
		classID := floats.MaxIdx(classScores)
		score := objectness * classScores[classID]
		if score < threshold {
			continue
		}

		cx, cy := float64(row[0]), float64(row[1])
		w, h := float64(row[2]), float64(row[3])
		if w < 0 || h < 0 {
			continue
		}
		detections = append(detections, entity.Detection{
			Label: labelFor(classID, labels),
			Box: clipBox(entity.BoundingBox{
				XMin: (cx - w/2) * scaleX,
				YMin: (cy - h/2) * scaleY,
				XMax: (cx + w/2) * scaleX,
				YMax: (cy + h/2) * scaleY,
			}, float64(imgW), float64(imgH)),
			Confidence: score,
		})
	}

	return detections
}

// suppressOverlaps выполняет NMS отдельно для каждой метки.
// Результат отсортирован по убыванию уверенности.
func suppressOverlaps(detections []entity.Detection, iouThreshold float64) []entity.Detection {
	sorted := append([]entity.Detection(nil), detections...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	kept := make([]entity.Detection, 0, len(sorted))
	for _, cand := range sorted {
		overlaps := false
		for _, k := range kept {
			if k.Label == cand.Label && iou(k.Box, cand.Box) > iouThreshold {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, cand)
		}
	}
	return kept
}

func clipBox(b entity.BoundingBox, width, height float64) entity.BoundingBox {
	return entity.BoundingBox{
		XMin: min(max(b.XMin, 0), width),
		YMin: min(max(b.YMin, 0), height),
		XMax: min(max(b.XMax, 0), width),
		YMax: min(max(b.YMax, 0), height),
	}
}

func iou(a, b entity.BoundingBox) float64 {
	ix := min(a.XMax, b.XMax) - max(a.XMin, b.XMin)
	iy := min(a.YMax, b.YMax) - max(a.YMin, b.YMin)
	if ix <= 0 || iy <= 0 {
		return 0
	}
	inter := ix * iy
	union := a.Width()*a.Height() + b.Width()*b.Height() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

func labelFor(classID int, labels []string) string {
	if classID < len(labels) && labels[classID] != "" {
		return labels[classID]
	}
	return "object"
}
