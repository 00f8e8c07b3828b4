package notifier

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleNotifier writes reports to a local writer, normally stdout. It
// replaces a network transport: the oscillator has no wire surface.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stdout}
}

// NewConsoleNotifierTo creates a notifier writing to the given writer.
func NewConsoleNotifierTo(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: w}
}

func (c *ConsoleNotifier) Send(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintln(c.out, text)
	return err
}
