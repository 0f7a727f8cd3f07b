// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/iox"
)

// transferFunc moves bytes between a descriptor and p in one syscall.
type transferFunc func(fd int, p []byte) (int, error)

// pacer paces would-block retries with iox.Backoff and counts them.
// Value type: lives on the caller's stack for one operation.
type pacer struct {
	bo    iox.Backoff
	waits int
}

func (p *pacer) wait() {
	p.waits++
	p.bo.Wait()
}

// transferAll repeats xfer until buf is fully transferred.
// Would-block and interrupted calls are retried without bound; a zero-byte
// transfer is ErrShortTransfer; any other error is returned as is.
func transferAll(fd int, buf []byte, xfer transferFunc, p *pacer) error {
	for len(buf) > 0 {
		n, err := xfer(fd, buf)
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			if isWouldBlock(err) {
				p.wait()
				continue
			}
			return err
		}
		if n == 0 {
			return ErrShortTransfer
		}
		if n < 0 || n > len(buf) {
			panic("fifoq: transfer syscall returned an impossible byte count")
		}
		buf = buf[n:]
		p.bo.Reset()
	}
	return nil
}

// tryTransfer is transferAll with a non-blocking start: it returns
// iox.ErrWouldBlock if the first byte cannot move yet. Once any byte has
// moved it completes the transfer like transferAll.
func tryTransfer(fd int, buf []byte, xfer transferFunc, p *pacer) error {
	for len(buf) > 0 {
		n, err := xfer(fd, buf)
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			if isWouldBlock(err) {
				return iox.ErrWouldBlock
			}
			return err
		}
		if n == 0 {
			return ErrShortTransfer
		}
		if n < 0 || n > len(buf) {
			panic("fifoq: transfer syscall returned an impossible byte count")
		}
		return transferAll(fd, buf[n:], xfer, p)
	}
	return nil
}
