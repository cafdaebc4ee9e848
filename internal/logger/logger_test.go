// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_Fields verifies the role, timestamp and caller fields.
func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewClientLogger("client"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

// TestWithAttempt_TagsLoggerAndContext verifies that both the returned
// logger and the logger recovered from the context carry the attempt id.
func TestWithAttempt_TagsLoggerAndContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("client", &buf)

	ctx, child := l.WithAttempt(context.Background(), "attempt-1")

	child.Info().Msg("direct")
	assert.Equal(t, "attempt-1", decodeEntry(t, &buf)[AttemptIDField])

	buf.Reset()
	FromContext(ctx).Info().Msg("via context")
	assert.Equal(t, "attempt-1", decodeEntry(t, &buf)[AttemptIDField])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContextOr(t *testing.T) {
	var fallbackBuf, ctxBuf bytes.Buffer
	fallback := NewLogger("fallback", &fallbackBuf)

	FromContextOr(context.Background(), fallback).Info().Msg("no ctx logger")
	assert.Equal(t, "fallback", decodeEntry(t, &fallbackBuf)["role"])

	ctx, _ := NewLogger("attempt", &ctxBuf).WithAttempt(context.Background(), "a-2")
	FromContextOr(ctx, fallback).Info().Msg("ctx logger")
	assert.Equal(t, "a-2", decodeEntry(t, &ctxBuf)[AttemptIDField])

	require.NotNil(t, FromContextOr(context.Background(), nil))
}
