package spawn

import (
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const chunkSize = 32 * 1024

// textBuffer is an append-only text buffer safe for concurrent use.
type textBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *textBuffer) append(chunk string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.WriteString(chunk)
}

// String returns the text accumulated so far.
func (b *textBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// accumulator captures stdout and stderr of one run.
// Every stdout chunk is offered to echo as soon as it is decoded.
type accumulator struct {
	stdout    textBuffer
	stderr    textBuffer
	displayed atomic.Bool

	// echo forwards a stdout chunk and reports whether it was displayed.
	echo func(chunk string) bool
}

func newAccumulator(echo func(chunk string) bool) *accumulator {
	return &accumulator{echo: echo}
}

// consume reads both streams concurrently until they are exhausted.
// A nil stream contributes nothing.
func (a *accumulator) consume(stdout, stderr io.Reader) error {
	var g errgroup.Group
	g.Go(func() error {
		return drain(stdout, a.onStdout)
	})
	g.Go(func() error {
		return drain(stderr, a.stderr.append)
	})
	return g.Wait()
}

func (a *accumulator) onStdout(chunk string) {
	a.stdout.append(chunk)
	if a.echo != nil && a.echo(chunk) {
		a.displayed.Store(true)
	}
}

// drain decodes r as UTF-8 and hands every chunk to fn in arrival order.
// Runes split across reads are joined; invalid bytes become U+FFFD.
func drain(r io.Reader, fn func(chunk string)) error {
	if r == nil {
		return nil
	}

	dec := transform.NewReader(r, unicode.UTF8.NewDecoder())
	buf := make([]byte, chunkSize)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			fn(string(buf[:n]))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
