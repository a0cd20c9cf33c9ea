// pkg/runtime/sink.go

package runtime

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Sink receives the message of a matched rule. After each message the
// evaluator emits one empty string as a separator entry.
type Sink interface {
	Emit(message string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(message string)

func (f SinkFunc) Emit(message string) {
	f(message)
}

// DiscardSink drops every message.
var DiscardSink Sink = SinkFunc(func(string) {})

// WriterSink writes one line per entry, so separators become blank lines.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Emit(message string) {
	fmt.Fprintln(s.W, message)
}

// LogSink writes messages to a zerolog logger at warn level. Separator
// entries carry no content and are dropped.
type LogSink struct {
	Logger zerolog.Logger
}

func (s LogSink) Emit(message string) {
	if message == "" {
		return
	}
	s.Logger.Warn().Str("component", "notification").Msg(message)
}
