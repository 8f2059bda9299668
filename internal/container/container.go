package container

import (
	app "assistive-vision/internal/application"
	"assistive-vision/internal/domain/port"
)

// Container держит модели и синтезатор, созданные один раз при старте процесса.
type Container struct {
	AssistService *app.AssistService

	closers []func() error
}

// New собирает сервисы приложения. classifier и speaker могут быть nil.
func New(decoder port.ImageDecoder, detector port.ObjectDetector, classifier port.SceneClassifier, speaker port.Speaker) *Container {
	return &Container{
		AssistService: app.NewAssistService(decoder, detector, classifier, speaker),
	}
}

// OnClose регистрирует освобождение ресурса при завершении.
func (c *Container) OnClose(fn func() error) {
	c.closers = append(c.closers, fn)
}

// Close освобождает ресурсы в обратном порядке и возвращает первую ошибку.
func (c *Container) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}
