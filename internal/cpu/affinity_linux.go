//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore restricts the calling OS thread to a single core.
// Must be called after runtime.LockOSThread().
func pinToCore(core int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	// pid 0 targets the calling thread.
	return unix.SchedSetaffinity(0, &mask)
}

// Pin locks the calling goroutine to its OS thread and pins that thread to
// core workerID % NumCPU. The returned release func unlocks the thread and is
// always non-nil, even when pinning failed; the error only reports that the
// affinity mask could not be applied.
func Pin(workerID int) (release func(), err error) {
	runtime.LockOSThread()
	release = runtime.UnlockOSThread

	if err := pinToCore(coreFor(workerID)); err != nil {
		return release, err
	}
	return release, nil
}
