// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/iox"
)

// lockGuard is a held exclusive advisory lock on a reader descriptor.
// Every open description of the pipe contends for the same lock, so one
// guard at a time may exist across all readers and processes.
type lockGuard struct {
	fd int
}

// lockFd acquires the lock on fd, waiting on p while another reader holds it.
func lockFd(fd int, p *pacer) (lockGuard, error) {
	for {
		err := sysFlock(fd, lockExclusive)
		if err == nil {
			return lockGuard{fd: fd}, nil
		}
		if isInterrupted(err) {
			continue
		}
		if !isWouldBlock(err) {
			return lockGuard{}, err
		}
		p.wait()
	}
}

// tryLockFd makes one attempt and returns iox.ErrWouldBlock if the lock
// is held elsewhere.
func tryLockFd(fd int) (lockGuard, error) {
	for {
		err := sysFlock(fd, lockExclusive)
		if err == nil {
			return lockGuard{fd: fd}, nil
		}
		if isInterrupted(err) {
			continue
		}
		if isWouldBlock(err) {
			return lockGuard{}, iox.ErrWouldBlock
		}
		return lockGuard{}, err
	}
}

// release drops the lock. Unlocking a descriptor we hold cannot fail
// unless the OS contract is broken, so failure panics.
func (g lockGuard) release() {
	for {
		err := sysFlock(g.fd, lockRelease)
		if err == nil {
			return
		}
		if !isInterrupted(err) {
			panic("fifoq: failed to release lock on pipe: " + err.Error())
		}
	}
}
