package vision

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"gonum.org/v1/gonum/floats"

	"assistive-vision/internal/domain/entity"
)

const (
	placeholderLabel  = "Unknown Scene"
	placeholderLabels = 1000
)

// LoadLabelsFile читает словарь меток: одна метка на строку.
func LoadLabelsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels: %w", err)
	}
	defer file.Close()

	var labels []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		labels = append(labels, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}

	return trimTrailingEmpty(labels), nil
}

// FetchLabels скачивает словарь меток по HTTP.
func FetchLabels(ctx context.Context, url string, timeout time.Duration) ([]string, error) {
	client := resty.New().SetTimeout(timeout)

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch labels: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch labels: unexpected status %d", resp.StatusCode())
	}

	lines := strings.Split(resp.String(), "\n")
	labels := make([]string, 0, len(lines))
	for _, line := range lines {
		labels = append(labels, strings.TrimSpace(line))
	}

	labels = trimTrailingEmpty(labels)
	if len(labels) == 0 {
		return nil, fmt.Errorf("fetch labels: empty vocabulary")
	}
	return labels, nil
}

// PlaceholderLabels — словарь-заглушка на случай, если скачать метки не вышло.
func PlaceholderLabels() []string {
	labels := make([]string, placeholderLabels)
	for i := range labels {
		labels[i] = placeholderLabel
	}
	return labels
}

// TopLabel возвращает метку с максимальным score.
// Если индекс выходит за словарь, возвращается "Unknown".
func TopLabel(scores []float32, labels []string) string {
	if len(scores) == 0 {
		return entity.UnknownScene
	}

	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = float64(s)
	}

	idx := floats.MaxIdx(values)
	if idx >= len(labels) {
		return entity.UnknownScene
	}
	return labels[idx]
}

func trimTrailingEmpty(labels []string) []string {
	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}
	return labels
}
