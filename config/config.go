package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultLabelsURL = "https://raw.githubusercontent.com/pytorch/hub/master/imagenet_classes.txt"

type Config struct {
	DetectorModel       string
	DetectorLabels      string
	DetectorInputSize   int
	ConfidenceThreshold float64
	NMSThreshold        float64

	ClassifierModel     string
	ClassifierLabelsURL string
	LabelsTimeout       time.Duration

	SpeechCommand string
	SpeechRate    int

	LogLevel string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		DetectorModel:       getEnv("DETECTOR_MODEL", "models/yolov5s.onnx"),
		DetectorLabels:      getEnv("DETECTOR_LABELS", "models/coco.names"),
		ClassifierModel:     getEnv("CLASSIFIER_MODEL", "models/efficientnet_b0.onnx"),
		ClassifierLabelsURL: getEnv("CLASSIFIER_LABELS_URL", defaultLabelsURL),
		SpeechCommand:       getEnv("SPEECH_COMMAND", "espeak"),
		LogLevel:            getEnv("LOG_LEVEL", "warn"),
	}

	var err error
	if cfg.DetectorInputSize, err = getInt("DETECTOR_INPUT_SIZE", 640); err != nil {
		return nil, err
	}
	if cfg.ConfidenceThreshold, err = getFloat("CONFIDENCE_THRESHOLD", 0.4); err != nil {
		return nil, err
	}
	if cfg.NMSThreshold, err = getFloat("NMS_THRESHOLD", 0.45); err != nil {
		return nil, err
	}
	if cfg.LabelsTimeout, err = getDuration("LABELS_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SpeechRate, err = getInt("SPEECH_RATE", 150); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
