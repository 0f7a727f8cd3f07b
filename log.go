// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

func (o *options) opened(handle, path string, serial Serial, fd int) {
	o.logger.Debug().
		Str("handle", handle).
		Str("path", path).
		Uint32("serial", serial).
		Int("fd", fd).
		Msg("fifoq: handle opened")
}

func (o *options) closed(handle, path string, serial Serial) {
	o.logger.Debug().
		Str("handle", handle).
		Str("path", path).
		Uint32("serial", serial).
		Msg("fifoq: handle closed")
}

// fail wraps err as an *Error whose call site is the caller of fail,
// logs it at debug level and counts it. Callers return the result.
func (o *options) fail(op, path string, serial Serial, err error) error {
	e := newError(1, op, path, serial, err)
	o.logger.Debug().
		Err(err).
		Str("op", op).
		Str("path", path).
		Uint32("serial", serial).
		Stringer("kind", e.Kind).
		Str("caller", e.Caller).
		Msg("fifoq: operation failed")
	o.metrics.failure(op, e.Kind)
	return e
}
