package input

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// LineReader reads sanitized lines from a stream without blocking callers
// past their context. A single goroutine pumps the underlying reader until
// the stream ends or Close is called.
type LineReader struct {
	reader *bufio.Reader

	lines     chan lineResult
	done      chan struct{}
	stopped   chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

type lineResult struct {
	text string
	err  error
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		reader:  bufio.NewReader(r),
		lines:   make(chan lineResult),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (l *LineReader) initPump() {
	l.startOnce.Do(func() {
		go l.pump()
	})
}

func (l *LineReader) pump() {
	defer close(l.stopped)
	defer close(l.lines)
	for {
		text, err := l.reader.ReadString('\n')
		if text != "" && !l.send(lineResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				l.send(lineResult{err: err})
			}
			return
		}
	}
}

// send hands res to ReadLine. It reports false once the reader is closed.
func (l *LineReader) send(res lineResult) bool {
	select {
	case l.lines <- res:
		return true
	case <-l.done:
		return false
	}
}

// ReadLine returns the next line with surrounding whitespace trimmed.
// Lines rejected by Sanitize are returned as errors; reading may continue.
// It returns io.EOF when the stream ends or the reader is closed, and
// ctx.Err() when ctx is done.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	l.initPump()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-l.done:
		return "", io.EOF
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return Sanitize(strings.TrimSpace(res.text))
	}
}

// Close releases the pump goroutine. A pump blocked inside the underlying
// Read exits after that Read returns.
func (l *LineReader) Close() {
	l.closeOnce.Do(func() { close(l.done) })
}
