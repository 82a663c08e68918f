// Package cpu binds pool workers to operating system threads.
package cpu

import "runtime"

// NumCPU returns the number of logical CPUs usable by the process.
func NumCPU() int {
	return runtime.NumCPU()
}

// coreFor maps a worker id onto a valid core index.
func coreFor(workerID int) int {
	n := NumCPU()
	if workerID < 0 {
		workerID = -workerID
	}
	return workerID % n
}
