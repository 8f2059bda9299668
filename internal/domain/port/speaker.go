package port

// Speaker интерфейс синтезатора речи
type Speaker interface {
	// Say ставит фразу в очередь на озвучку
	Say(text string) error

	// RunAndWait блокируется, пока все фразы из очереди не будут произнесены
	RunAndWait() error
}
