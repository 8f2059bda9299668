package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/akamensky/argparse"
	log "github.com/sirupsen/logrus"

	app "assistive-vision/internal/application"
	"assistive-vision/internal/domain/entity"
)

const msgCouldNotReadImage = "Could not read image"

// Options аргументы командной строки
type Options struct {
	ImagePath string
	NoAudio   bool
}

// UsageError ошибка разбора аргументов; Usage содержит текст справки.
type UsageError struct {
	Usage string
	Err   error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Processor обрабатывает одно изображение
type Processor interface {
	Process(ctx context.Context, imagePath string) (*entity.FeedbackResult, error)
}

// ParseArgs разбирает аргументы вида os.Args.
func ParseArgs(args []string) (*Options, error) {
	parser := argparse.NewParser("assistive-vision", "Assistive Vision System")
	image := parser.String("i", "image", &argparse.Options{Help: "Path to input image", Required: true})
	noAudio := parser.Flag("", "no-audio", &argparse.Options{Help: "Disable TTS output", Default: false})

	if err := parser.Parse(args); err != nil {
		return nil, &UsageError{Usage: parser.Usage(err), Err: err}
	}

	return &Options{ImagePath: *image, NoAudio: *noAudio}, nil
}

// Run обрабатывает изображение и пишет JSON в out.
// Нечитаемое изображение — не ошибка: в out пишется {"error": "Could not read image"}.
func Run(ctx context.Context, processor Processor, imagePath string, out io.Writer) error {
	result, err := processor.Process(ctx, imagePath)
	if errors.Is(err, app.ErrImageUnreadable) {
		log.Warnf("Could not read image: %v", err)
		return writeJSON(out, entity.ErrorResult{Error: msgCouldNotReadImage})
	}
	if err != nil {
		return fmt.Errorf("process image: %w", err)
	}

	return writeJSON(out, result)
}

func writeJSON(out io.Writer, v any) error {
	if err := json.NewEncoder(out).Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
