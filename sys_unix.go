// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package fifoq

import (
	"errors"

	"golang.org/x/sys/unix"
)

const (
	lockExclusive = unix.LOCK_EX | unix.LOCK_NB
	lockRelease   = unix.LOCK_UN
)

func sysMkfifo(path string, mode uint32) error {
	return unix.Mkfifo(path, mode)
}

// sysOpen opens path in non-blocking mode, write-only when write is set
// and read-only otherwise.
func sysOpen(path string, write bool) (int, error) {
	flags := unix.O_RDONLY | unix.O_NONBLOCK | unix.O_CLOEXEC
	if write {
		flags = unix.O_WRONLY | unix.O_NONBLOCK | unix.O_CLOEXEC
	}
	for {
		fd, err := unix.Open(path, flags, 0)
		if err == unix.EINTR {
			continue
		}
		return fd, err
	}
}

func sysIsFIFO(fd int) (bool, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return false, err
	}
	return st.Mode&unix.S_IFMT == unix.S_IFIFO, nil
}

func sysRead(fd int, p []byte) (int, error) {
	return unix.Read(fd, p)
}

func sysWrite(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}

func sysFlock(fd int, how int) error {
	return unix.Flock(fd, how)
}

func sysClose(fd int) error {
	return unix.Close(fd)
}

// isWouldBlock reports the transient "no data or space yet" condition of a
// non-blocking descriptor.
func isWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

func isInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}

func isNotExist(err error) bool {
	return errors.Is(err, unix.ENOENT)
}
