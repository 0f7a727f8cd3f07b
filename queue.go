// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Queue is the producer side of a named-pipe queue.
// It owns the only write descriptor of the pipe. Send is not safe for
// concurrent use, and Close must not race with Send.
type Queue struct {
	fd     int
	anchor int
	path   string
	serial Serial
	closed atomix.Uint32
	opts   options
}

// Create makes a FIFO at path and opens it for non-blocking writes.
// It fails if path already exists. The FIFO outlives the Queue; removing
// it is the caller's job.
//
// A non-blocking write-only open of a FIFO fails while no reader has it
// open, so Create first opens a read descriptor of its own. That anchor
// is never read from; it keeps the pipe open so frames sent before any
// Reader attaches wait in the kernel buffer.
func Create(path string, opts ...Option) (*Queue, error) {
	o := newOptions(opts)
	s := nextSerial()
	if err := sysMkfifo(path, uint32(o.mode)); err != nil {
		return nil, o.fail("create", path, s, err)
	}
	anchor, err := sysOpen(path, false)
	if err != nil {
		return nil, o.fail("open", path, s, err)
	}
	fd, err := sysOpen(path, true)
	if err != nil {
		_ = sysClose(anchor)
		return nil, o.fail("open", path, s, err)
	}
	o.opened("queue", path, s, fd)
	return &Queue{fd: fd, anchor: anchor, path: path, serial: s, opts: o}, nil
}

// Path returns the filesystem path of the pipe.
func (q *Queue) Path() string { return q.path }

// Serial returns the handle serial used in errors and logs.
func (q *Queue) Serial() Serial { return q.serial }

// Fd returns the write descriptor.
func (q *Queue) Fd() int { return q.fd }

// Send writes payload as one frame. It waits while the pipe buffer is
// full and returns once the whole frame is in the pipe. It panics if
// payload is longer than MaxPayload.
func (q *Queue) Send(payload []byte) error {
	if q.closed.Load() != 0 {
		return q.opts.fail("send", q.path, q.serial, ErrClosed)
	}
	frame := AppendFrame(make([]byte, 0, HeaderSize+len(payload)), payload)
	var p pacer
	err := transferAll(q.fd, frame, sysWrite, &p)
	q.opts.metrics.waited("send", p.waits)
	if err != nil {
		return q.opts.fail("send", q.path, q.serial, err)
	}
	q.opts.metrics.frame(dirSent, len(payload))
	return nil
}

// TrySend is Send with a non-blocking start. It returns iox.ErrWouldBlock
// if the pipe buffer is full; once the first byte is written it finishes
// the frame like Send.
func (q *Queue) TrySend(payload []byte) error {
	if q.closed.Load() != 0 {
		return q.opts.fail("send", q.path, q.serial, ErrClosed)
	}
	frame := AppendFrame(make([]byte, 0, HeaderSize+len(payload)), payload)
	var p pacer
	err := tryTransfer(q.fd, frame, sysWrite, &p)
	q.opts.metrics.waited("send", p.waits)
	if iox.IsWouldBlock(err) {
		return err
	}
	if err != nil {
		return q.opts.fail("send", q.path, q.serial, err)
	}
	q.opts.metrics.frame(dirSent, len(payload))
	return nil
}

// Close releases the descriptors. Readers see end of stream once the
// buffered frames are drained. Close is idempotent.
func (q *Queue) Close() error {
	if q.closed.Add(1) != 1 {
		return nil
	}
	err := sysClose(q.fd)
	if aerr := sysClose(q.anchor); err == nil {
		err = aerr
	}
	q.opts.closed("queue", q.path, q.serial)
	if err != nil {
		return q.opts.fail("close", q.path, q.serial, err)
	}
	return nil
}
