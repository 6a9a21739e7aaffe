package logging

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace to the context logger and
// stores it in *errp as an error. Use it deferred at the top of a command:
//
//	defer logging.RecoverPanic(ctx, &err)
func RecoverPanic(ctx context.Context, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	LogPanic(FromContext(ctx), r, debug.Stack())
	if errp != nil {
		*errp = fmt.Errorf("panic: %v", r)
	}
}

// LogPanic writes a recovered value and its stack at panic level, which the
// file logs render as CRITICAL. It does not exit or re-panic.
func LogPanic(log *zerolog.Logger, r any, stack []byte) {
	log.WithLevel(zerolog.PanicLevel).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", stack).
		Msgf("PANIC: %v", r)
}
