// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq_test

import (
	"path/filepath"
	"testing"

	"code.hybscloud.com/fifoq"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// pipePath returns a fresh FIFO path inside a per-test directory.
func pipePath(tb testing.TB) string {
	tb.Helper()
	return filepath.Join(tb.TempDir(), "queue")
}

// newQueue creates a queue closed at test cleanup.
func newQueue(tb testing.TB, path string, opts ...fifoq.Option) *fifoq.Queue {
	tb.Helper()
	q, err := fifoq.Create(path, opts...)
	if err != nil {
		tb.Fatalf("Create(%q): %v", path, err)
	}
	tb.Cleanup(func() { _ = q.Close() })
	return q
}

// newReader opens a reader closed at test cleanup.
func newReader(tb testing.TB, path string, opts ...fifoq.Option) *fifoq.Reader {
	tb.Helper()
	r, err := fifoq.Open(path, opts...)
	if err != nil {
		tb.Fatalf("Open(%q): %v", path, err)
	}
	tb.Cleanup(func() { _ = r.Close() })
	return r
}

// execExpr drives a protocol to completion on ep via Step+Advance loop.
// Retries on iox.ErrWouldBlock; fails the test on any other error.
func execExpr[R any](tb testing.TB, ep *fifoq.Endpoint, protocol kont.Expr[R]) R {
	tb.Helper()
	result, susp := fifoq.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = fifoq.Advance(ep, susp)
		if err != nil && !iox.IsWouldBlock(err) {
			susp.Discard()
			tb.Fatalf("Advance: %v", err)
		}
	}
	return result
}
