// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package fifoq

import (
	"errors"
	"io/fs"
)

// Named pipes with advisory locks are unavailable on this platform.
// Every backend call fails with errors.ErrUnsupported.

const (
	lockExclusive = 0
	lockRelease   = 0
)

func sysMkfifo(string, uint32) error { return errors.ErrUnsupported }
func sysOpen(string, bool) (int, error) { return -1, errors.ErrUnsupported }
func sysIsFIFO(int) (bool, error) { return false, errors.ErrUnsupported }
func sysRead(int, []byte) (int, error) { return -1, errors.ErrUnsupported }
func sysWrite(int, []byte) (int, error) { return -1, errors.ErrUnsupported }
func sysFlock(int, int) error { return errors.ErrUnsupported }
func sysClose(int) error { return errors.ErrUnsupported }
func isWouldBlock(error) bool { return false }
func isInterrupted(error) bool { return false }
func isNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }
