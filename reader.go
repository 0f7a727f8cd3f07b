// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Reader is one consumer of a named-pipe queue.
// Any number of Readers, in any number of processes, may receive from the
// same pipe; the advisory lock hands each frame to exactly one of them.
// A single Reader is not safe for concurrent use.
type Reader struct {
	fd     int
	path   string
	serial Serial
	closed atomix.Uint32
	opts   options
}

// Open opens the existing FIFO at path for non-blocking reads.
// It fails with KindNotFound if path does not exist and with ErrNotFIFO
// if path is not a named pipe.
func Open(path string, opts ...Option) (*Reader, error) {
	o := newOptions(opts)
	s := nextSerial()
	fd, err := sysOpen(path, false)
	if err != nil {
		return nil, o.fail("open", path, s, err)
	}
	fifo, err := sysIsFIFO(fd)
	if err == nil && !fifo {
		err = ErrNotFIFO
	}
	if err != nil {
		_ = sysClose(fd)
		return nil, o.fail("open", path, s, err)
	}
	o.opened("reader", path, s, fd)
	return &Reader{fd: fd, path: path, serial: s, opts: o}, nil
}

// Path returns the filesystem path of the pipe.
func (r *Reader) Path() string { return r.path }

// Serial returns the handle serial used in errors and logs.
func (r *Reader) Serial() Serial { return r.serial }

// Fd returns the read descriptor.
func (r *Reader) Fd() int { return r.fd }

// Receive dequeues one whole frame and returns its payload.
// It waits for the advisory lock, then for the length prefix, then for
// the payload. The lock is released on every return path. If the
// producer goes away mid-frame Receive fails with ErrShortTransfer;
// no partial payload is ever returned.
func (r *Reader) Receive() ([]byte, error) {
	if r.closed.Load() != 0 {
		return nil, r.opts.fail("receive", r.path, r.serial, ErrClosed)
	}
	var p pacer
	g, err := lockFd(r.fd, &p)
	if err != nil {
		r.opts.metrics.waited("lock", p.waits)
		return nil, r.opts.fail("lock", r.path, r.serial, err)
	}
	defer g.release()
	r.opts.metrics.waited("lock", p.waits)
	p.waits = 0

	msg, err := r.readFrame(transferAll, &p)
	r.opts.metrics.waited("receive", p.waits)
	if err != nil {
		return nil, r.opts.fail("receive", r.path, r.serial, err)
	}
	r.opts.metrics.frame(dirReceived, len(msg))
	return msg, nil
}

// TryReceive is Receive with a non-blocking start. It returns
// iox.ErrWouldBlock if another reader holds the lock or no frame has
// begun to arrive; once the first byte is read it finishes the frame
// like Receive.
func (r *Reader) TryReceive() ([]byte, error) {
	if r.closed.Load() != 0 {
		return nil, r.opts.fail("receive", r.path, r.serial, ErrClosed)
	}
	g, err := tryLockFd(r.fd)
	if iox.IsWouldBlock(err) {
		return nil, err
	}
	if err != nil {
		return nil, r.opts.fail("lock", r.path, r.serial, err)
	}
	defer g.release()

	var p pacer
	msg, err := r.readFrame(tryTransfer, &p)
	r.opts.metrics.waited("receive", p.waits)
	if iox.IsWouldBlock(err) {
		return nil, err
	}
	if err != nil {
		return nil, r.opts.fail("receive", r.path, r.serial, err)
	}
	r.opts.metrics.frame(dirReceived, len(msg))
	return msg, nil
}

// readFrame reads one frame; the caller holds the lock. start moves the
// length prefix and decides whether the read may begin non-blocking.
func (r *Reader) readFrame(start func(int, []byte, transferFunc, *pacer) error, p *pacer) ([]byte, error) {
	var hdr [HeaderSize]byte
	if err := start(r.fd, hdr[:], sysRead, p); err != nil {
		return nil, err
	}
	n := DecodeLength(hdr[:])
	if n > r.opts.maxMessage {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, n, r.opts.maxMessage)
	}
	msg := make([]byte, n)
	if err := transferAll(r.fd, msg, sysRead, p); err != nil {
		return nil, err
	}
	return msg, nil
}

// Close releases the read descriptor. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed.Add(1) != 1 {
		return nil
	}
	err := sysClose(r.fd)
	r.opts.closed("reader", r.path, r.serial)
	if err != nil {
		return r.opts.fail("close", r.path, r.serial, err)
	}
	return nil
}
