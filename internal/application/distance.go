package app

import "math"

// CalibrationConstant переводит обратную высоту рамки в метры.
// Значение демонстрационное, под конкретную камеру оно не калибровалось.
const CalibrationConstant = 1000.0

// EstimateDistance оценивает расстояние до объекта по высоте его рамки: k / h,
// с округлением до сантиметров. Для вырожденной рамки (h == 0) возвращает 0.
//
// imageHeight пока не участвует в формуле и оставлен под будущую калибровку.
func EstimateDistance(bboxHeight, imageHeight float64) float64 {
	_ = imageHeight
	if bboxHeight == 0 {
		return 0
	}
	return math.Round(CalibrationConstant/bboxHeight*100) / 100
}
