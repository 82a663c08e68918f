// Package safe converts panics raised by user-supplied functions into errors.
package safe

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrPanicked marks errors produced from a recovered panic.
var ErrPanicked = errors.New("task panicked")

const stackSize = 4096

// Do runs fn and returns its error. A panic inside fn is recovered and
// returned as an error wrapping ErrPanicked, with the panic value and the
// stack of the panicking goroutine attached.
func Do(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, stackSize)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: %v\nstack trace:\n%s", ErrPanicked, r, buf[:n])
		}
	}()

	return fn()
}
