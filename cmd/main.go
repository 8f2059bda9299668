package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"assistive-vision/config"
	cli "assistive-vision/internal/api"
	"assistive-vision/internal/container"
	"assistive-vision/internal/domain/port"
	"assistive-vision/internal/infrastructure/speech"
	"assistive-vision/internal/infrastructure/vision"
)

func main() {
	log.SetOutput(os.Stderr)

	opts, err := cli.ParseArgs(os.Args)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(os.Stderr, usageErr.Usage)
		}
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown log level %q, using warn", cfg.LogLevel)
		level = log.WarnLevel
	}
	log.SetLevel(level)

	ctx := context.Background()

	// Озвучка: без неё работаем молча
	var speaker port.Speaker
	if !opts.NoAudio {
		s, err := speech.NewCommandSpeaker(cfg.SpeechCommand, cfg.SpeechRate)
		if err != nil {
			log.Warnf("TTS initialization failed: %v", err)
		} else {
			speaker = s
		}
	}

	// Детектор обязателен
	log.Info("Loading YOLOv5 model...")
	detectorCfg := vision.DefaultDetectorConfig()
	detectorCfg.ModelPath = cfg.DetectorModel
	detectorCfg.InputSize = cfg.DetectorInputSize
	detectorCfg.ConfidenceThreshold = cfg.ConfidenceThreshold
	detectorCfg.NMSThreshold = cfg.NMSThreshold
	detectorCfg.Labels, err = vision.LoadLabelsFile(cfg.DetectorLabels)
	if err != nil {
		log.Fatalf("Error loading YOLOv5 labels: %v", err)
	}

	detector, err := vision.NewYOLODetector(detectorCfg)
	if err != nil {
		log.Fatalf("Error loading YOLOv5: %v", err)
	}

	// Классификатор сцены опционален
	log.Info("Loading EfficientNet model...")
	var classifier port.SceneClassifier
	labels, err := vision.FetchLabels(ctx, cfg.ClassifierLabelsURL, cfg.LabelsTimeout)
	if err != nil {
		log.Warnf("Scene labels unavailable, using placeholders: %v", err)
		labels = vision.PlaceholderLabels()
	}
	sceneClassifier, err := vision.NewSceneClassifier(cfg.ClassifierModel, labels)
	if err != nil {
		log.Warnf("Error loading EfficientNet: %v", err)
	} else {
		classifier = sceneClassifier
	}

	appContainer := container.New(vision.NewImageDecoder(), detector, classifier, speaker)
	appContainer.OnClose(detector.Close)
	if sceneClassifier != nil {
		appContainer.OnClose(sceneClassifier.Close)
	}

	runErr := cli.Run(ctx, appContainer.AssistService, opts.ImagePath, os.Stdout)
	if err := appContainer.Close(); err != nil {
		log.Debugf("Release models: %v", err)
	}
	if runErr != nil {
		log.Errorf("Analysis failed: %v", runErr)
		os.Exit(1)
	}
}
