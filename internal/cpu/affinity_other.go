//go:build !linux

package cpu

import "runtime"

// Pin locks the calling goroutine to its OS thread. Core pinning is only
// implemented on Linux; elsewhere the thread is locked but may migrate.
func Pin(workerID int) (release func(), err error) {
	_ = coreFor(workerID)
	runtime.LockOSThread()
	return runtime.UnlockOSThread, nil
}
