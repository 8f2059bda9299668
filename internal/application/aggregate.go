package app

import "assistive-vision/internal/domain/entity"

// Aggregate сводит детекции к уникальным меткам и минимальной дистанции по каждой.
// Метки возвращаются в порядке первого появления. При равных дистанциях
// сохраняется первое значение.
func Aggregate(detections []entity.Detection, imageHeight float64) ([]string, map[string]float64) {
	labels := make([]string, 0, len(detections))
	distances := make(map[string]float64, len(detections))

	for _, det := range detections {
		dist := EstimateDistance(det.Box.Height(), imageHeight)

		closest, seen := distances[det.Label]
		if !seen {
			labels = append(labels, det.Label)
			distances[det.Label] = dist
			continue
		}
		if dist < closest {
			distances[det.Label] = dist
		}
	}

	return labels, distances
}
