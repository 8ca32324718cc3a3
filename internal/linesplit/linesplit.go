// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linesplit

import (
	"bytes"
	"strings"
	"sync"
)

// MaxLineLength bounds the partial line buffer. A line longer than this is
// emitted in pieces of at most MaxLineLength bytes.
const MaxLineLength = 1024 * 1024 // 1MB

// Writer splits written data into lines and passes each non-blank line to emit.
// Line order is preserved. It is safe for concurrent use, although concurrent
// writers will interleave their partial lines.
type Writer struct {
	emit    func(line string)
	partial bytes.Buffer // Buffer for incomplete lines
	mu      sync.Mutex
}

// NewWriter creates a Writer that calls emit for every complete line.
func NewWriter(emit func(line string)) *Writer {
	return &Writer{
		emit: emit,
	}
}

// Write implements io.Writer. It never returns an error.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data := p

	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			w.partial.Write(data)
			break
		}

		w.partial.Write(data[:i])
		w.emitPartial()

		data = data[i+1:]
	}

	for w.partial.Len() > MaxLineLength {
		chunk := w.partial.Next(MaxLineLength)
		w.emitLine(string(chunk))
	}

	return len(p), nil
}

// Flush emits any buffered partial line. Call it once the source reaches EOF.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.emitPartial()
}

// emitPartial emits the buffered line and resets the buffer.
// Must be called with the lock held.
func (w *Writer) emitPartial() {
	line := w.partial.String()
	w.partial.Reset()
	w.emitLine(line)
}

// emitLine must be called with the lock held.
func (w *Writer) emitLine(line string) {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return
	}

	w.emit(line)
}
