package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverPanic_LogsAndReturnsError(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(Config{Level: DefaultConfig().Level, Format: "json"}, &buf)
	ctx := WithContext(context.Background(), logger)

	run := func() (err error) {
		defer RecoverPanic(ctx, &err)
		panic(errors.New("boom"))
	}

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, buf.String(), `"level":"panic"`)
	assert.Contains(t, buf.String(), "PANIC: boom")
	assert.Contains(t, buf.String(), `"stack"`)
}

func TestRecoverPanic_NoPanicLeavesErrorAlone(t *testing.T) {
	want := errors.New("original")
	run := func() (err error) {
		defer RecoverPanic(context.Background(), &err)
		return want
	}

	assert.Equal(t, want, run())
}
