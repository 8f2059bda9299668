package app

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxSpokenObjects = 3
	msgNoObstacles   = "No obstacles detected."
)

// Compose собирает фразу для озвучки: сцена и не больше трёх первых объектов.
func Compose(scene string, labels []string, distances map[string]float64) string {
	spoken := labels
	if len(spoken) > maxSpokenObjects {
		spoken = spoken[:maxSpokenObjects]
	}

	objectText := msgNoObstacles
	if len(spoken) > 0 {
		parts := make([]string, 0, len(spoken))
		for _, label := range spoken {
			parts = append(parts, fmt.Sprintf("%s at %s meters", label, formatDistance(distances[label])))
		}
		objectText = strings.Join(parts, ", ")
	}

	return fmt.Sprintf("Scene appears to be %s. %s", scene, objectText)
}

// formatDistance печатает целые метры с ".0" (20.0), а вырожденный ноль как "0".
func formatDistance(d float64) string {
	if d == 0 {
		return "0"
	}
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
