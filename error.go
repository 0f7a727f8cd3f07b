// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

var (
	// ErrNotFound matches errors of KindNotFound.
	ErrNotFound = errors.New("fifoq: no such pipe")
	// ErrShortTransfer reports a zero-byte transfer: the peer closed its
	// end before a whole frame moved.
	ErrShortTransfer = errors.New("fifoq: failed to transfer all bytes")
	// ErrFrameTooLarge reports a declared length above the reader's limit.
	ErrFrameTooLarge = errors.New("fifoq: frame exceeds message size limit")
	// ErrNotFIFO reports that the opened path is not a named pipe.
	ErrNotFIFO = errors.New("fifoq: not a named pipe")
	// ErrClosed reports use of a closed handle.
	ErrClosed = errors.New("fifoq: handle closed")
	// ErrNoQueue reports a Send effect on an endpoint without a Queue.
	ErrNoQueue = errors.New("fifoq: endpoint has no queue")
	// ErrNoReader reports a Recv effect on an endpoint without a Reader.
	ErrNoReader = errors.New("fifoq: endpoint has no reader")
)

// Error describes a failed pipe operation.
// Caller is the file:line inside this package that detected the failure.
type Error struct {
	Op     string
	Path   string
	Serial Serial
	Kind   Kind
	Err    error
	Caller string
}

func (e *Error) Error() string {
	return "fifoq: " + e.Op + " " + e.Path +
		" [serial=" + strconv.FormatUint(uint64(e.Serial), 10) + "]: " +
		e.Err.Error() + " [at " + e.Caller + "]"
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrNotFound and ErrClosed by Kind, so a not-found error
// still unwraps to the underlying OS error.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrClosed:
		return e.Kind == KindClosed
	}
	return false
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// newError wraps err for op. skip counts stack frames above the caller of
// newError when recording the call site.
func newError(skip int, op, path string, serial Serial, err error) *Error {
	caller := "unknown"
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return &Error{
		Op:     op,
		Path:   path,
		Serial: serial,
		Kind:   classify(err),
		Err:    err,
		Caller: caller,
	}
}
