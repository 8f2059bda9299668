// Package speech озвучивает текст через внешний синтезатор (espeak и совместимые).
package speech

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"assistive-vision/internal/domain/port"
)

// DefaultRate скорость речи, слов в минуту.
const DefaultRate = 150

// CommandSpeaker копит фразы и произносит их командой синтезатора.
type CommandSpeaker struct {
	command string
	rate    int

	mu    sync.Mutex
	queue []string
}

// NewCommandSpeaker ищет команду синтезатора в PATH.
// Ошибка означает, что озвучка недоступна и надо работать молча.
func NewCommandSpeaker(command string, rate int) (*CommandSpeaker, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("speech engine %q not available: %w", command, err)
	}
	if rate <= 0 {
		rate = DefaultRate
	}

	return &CommandSpeaker{command: path, rate: rate}, nil
}

// Say ставит фразу в очередь.
func (s *CommandSpeaker) Say(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("empty utterance")
	}

	s.mu.Lock()
	s.queue = append(s.queue, text)
	s.mu.Unlock()
	return nil
}

// RunAndWait произносит все фразы из очереди по порядку и ждёт завершения.
// Очередь очищается, даже если синтезатор упал.
func (s *CommandSpeaker) RunAndWait() error {
	s.mu.Lock()
	queue := s.queue
	s.queue = nil
	s.mu.Unlock()

	for _, text := range queue {
		var stderr bytes.Buffer
		cmd := exec.Command(s.command, "-s", strconv.Itoa(s.rate), text)
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("speak: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Speaker = (*CommandSpeaker)(nil)
