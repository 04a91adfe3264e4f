package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/secrethub/secrethub-go/internals/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestPrinter(t *testing.T) {
	w := &syncBuffer{}
	p := NewPrinter(w, time.Millisecond)

	p.Start()
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	out := w.String()
	assert.Equal(t, strings.HasSuffix(out, "\n"), true)
	assert.Equal(t, strings.Trim(out, ".\n"), "")
	assert.Equal(t, strings.Count(out, "\n"), 1)
}
