//go:build !unix

package jsonstore

import "context"

// lockFile is a no-op where flock is unavailable; the in-process semaphore still applies.
func lockFile(_ context.Context, _ string) (func(), error) {
	return func() {}, nil
}
