package runtime

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"rgehrsitz/reflex/pkg/rules"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSink_SeparatorIsBlankLine(t *testing.T) {
	var buf bytes.Buffer
	e := NewEvaluator(rules.CreateDefault(), WriterSink{W: &buf}, quiet())

	_, err := e.Evaluate(newHero(5, 0))
	require.NoError(t, err)
	assert.Equal(t, "No healing potion\n\n", buf.String())
}

func TestLogSink_DropsSeparator(t *testing.T) {
	var buf bytes.Buffer
	sink := LogSink{Logger: zerolog.New(&buf)}
	e := NewEvaluator(rules.CreateDefault(), sink, quiet())

	_, err := e.Evaluate(newHero(5, 1))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], rules.HealingResourceAvailableMessage)
}

func TestSinkFunc(t *testing.T) {
	var got []string
	sink := SinkFunc(func(message string) { got = append(got, message) })
	sink.Emit("hello")
	assert.Equal(t, []string{"hello"}, got)
}

func TestNilSinkDiscards(t *testing.T) {
	e := NewEvaluator(rules.CreateDefault(), nil, quiet())
	outcome, err := e.Evaluate(newHero(1, 0))
	require.NoError(t, err)
	assert.True(t, outcome.Matched)
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")

	condErr := &ConditionEvaluationError{Rule: "r", Index: 2, Err: cause}
	assert.Equal(t, "condition of rule 'r' at index 2 failed: boom", condErr.Error())
	assert.ErrorIs(t, condErr, cause)

	actErr := &ActionExecutionError{Rule: "r", Index: 0, Err: cause}
	assert.Equal(t, "action of rule 'r' at index 0 failed: boom", actErr.Error())
	assert.ErrorIs(t, actErr, cause)

	assert.ErrorIs(t, panicError("text"), ErrRulePanicked)
	assert.ErrorIs(t, panicError(cause), cause)
}
