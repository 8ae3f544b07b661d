package cli

import (
	"context"
	"io"
	"os"
	"time"
)

// Run is the process entry point. sigCh can be nil if signal handling is
// not needed (e.g. in tests).
func Run(_ io.Reader, out, errOut io.Writer, args []string, _ map[string]string, sigCh <-chan os.Signal) int {
	o := NewIO(out, errOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)

	go func() {
		done <- Exec(ctx, o, args[1:])
	}()

	select {
	case code := <-done:
		return code
	case <-sigCh:
		o.ErrPrintln("shutting down with 5s timeout...")
		cancel()
	}

	select {
	case <-done:
		o.ErrPrintln("graceful shutdown ok (130)")

		return 130
	case <-time.After(5 * time.Second):
		o.ErrPrintln("graceful shutdown timed out, forced exit (130)")

		return 130
	case <-sigCh:
		o.ErrPrintln("graceful shutdown interrupted, forced exit (130)")

		return 130
	}
}
