// Package cliutil provides small output-flushing helpers for cmd/thinc,
// trimmed from a larger CLI-facing writer that also handled multi-writer
// line prefixing (a concern this single-output CLI doesn't have).
package cliutil

import (
	"bytes"
	"io"
)

// WriteBuffer combines a byte buffer with a destination writer and flush
// policy. Example use:
//
//	var buf WriteBuffer
//	buf.To = os.Stdout
//	io.WriteString(&buf, text)
//	buf.MaybeFlush() // TODO errcheck
//	buf.Flush()      // TODO errcheck
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
}

// FlushPolicy determines when a WriteBuffer should flush during its main
// write phase.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc is a convenience adaptor for FlushPolicy around a
// compatible anonymous function.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function pointer.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes all of the receiver buffer's contents, regardless of the
// FlushPolicy. Call after the main write phase.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes N bytes into To if FlushPolicy returns N > 0. The N
// bytes written are then discarded from the receiver buffer. If
// FlushPolicy is nil, it defaults to FlushLineChunks.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks is a FlushPolicy(Func) that flushes as large a chunk as
// possible, through the last written newline byte.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}
