package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// InterruptHandler prints a notice when a command's context is canceled
// while it is talking to the record store.
type InterruptHandler struct {
	writer      io.Writer
	interrupted bool
	mu          sync.Mutex
}

// NewInterruptHandler creates a new interrupt handler.
func NewInterruptHandler(writer io.Writer) *InterruptHandler {
	if writer == nil {
		writer = os.Stderr
	}
	return &InterruptHandler{
		writer: writer,
	}
}

// Watch prints the interrupt notice once if ctx is canceled before the
// returned stop function is called. pendingWrite adds a hint that a write
// may have reached the store anyway. stop blocks until watching has ended.
func (h *InterruptHandler) Watch(ctx context.Context, pendingWrite bool) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		select {
		case <-ctx.Done():
		case <-done:
		}
		if ctx.Err() == nil {
			return
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		if !h.interrupted {
			h.interrupted = true
			h.showInterruptMessage(pendingWrite)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-finished
	}
}

func (h *InterruptHandler) showInterruptMessage(pendingWrite bool) {
	msg := "\n" + FormatWarning("Interrupted!")

	if pendingWrite {
		msg += "\n" + FormatInfo("The transaction may already be saved. Check with: caisse transactions")
	}

	msg += "\n"

	if _, err := fmt.Fprint(h.writer, msg); err != nil {
		// Best effort - we're shutting down anyway
		fmt.Fprintf(os.Stderr, "Failed to write interrupt message: %v\n", err)
	}
}

// WasInterrupted returns true if a watched context was canceled.
func (h *InterruptHandler) WasInterrupted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interrupted
}
