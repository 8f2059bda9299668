package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"

	"assistive-vision/internal/domain/entity"
	"assistive-vision/internal/domain/port"
)

// ErrImageUnreadable возвращается, если изображение не удалось прочитать или декодировать.
var ErrImageUnreadable = errors.New("could not read image")

type AssistService struct {
	decoder    port.ImageDecoder
	detector   port.ObjectDetector
	classifier port.SceneClassifier
	speaker    port.Speaker
}

// NewAssistService создаёт сервис обработки изображения.
// classifier и speaker могут быть nil: тогда сцена будет "Unknown", а озвучка отключена.
func NewAssistService(decoder port.ImageDecoder, detector port.ObjectDetector, classifier port.SceneClassifier, speaker port.Speaker) *AssistService {
	return &AssistService{
		decoder:    decoder,
		detector:   detector,
		classifier: classifier,
		speaker:    speaker,
	}
}

// Process прогоняет изображение через детектор и классификатор и собирает итоговый текст.
func (s *AssistService) Process(ctx context.Context, imagePath string) (*entity.FeedbackResult, error) {
	if s.decoder == nil || s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	img, err := s.decoder.Decode(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageUnreadable, err)
	}

	detections, err := s.detector.Detect(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("detect objects: %w", err)
	}

	labels, distances := Aggregate(detections, float64(img.Bounds().Dy()))
	scene := s.classifyScene(ctx, img)
	text := Compose(scene, labels, distances)

	s.speak(text)

	return &entity.FeedbackResult{
		Objects:      labels,
		Distances:    distances,
		Scene:        scene,
		FeedbackText: text,
	}, nil
}

// classifyScene возвращает метку сцены или "Unknown", если классификатора нет или он упал.
func (s *AssistService) classifyScene(ctx context.Context, img image.Image) string {
	if s.classifier == nil {
		return entity.UnknownScene
	}

	scene, err := s.classifier.Classify(ctx, img)
	if err != nil {
		log.Warnf("Scene classification failed: %v", err)
		return entity.UnknownScene
	}
	if scene == "" {
		return entity.UnknownScene
	}
	return scene
}

// speak озвучивает текст; ошибки синтезатора не влияют на результат.
func (s *AssistService) speak(text string) {
	if s.speaker == nil {
		return
	}
	if err := sayAndWait(s.speaker, text); err != nil {
		log.Debugf("Speech output failed: %v", err)
	}
}

func sayAndWait(speaker port.Speaker, text string) error {
	if err := speaker.Say(text); err != nil {
		return err
	}
	return speaker.RunAndWait()
}
