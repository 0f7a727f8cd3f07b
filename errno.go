// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import "errors"

// Kind is the semantic class of a failed pipe operation.
type Kind uint8

const (
	// KindIO is any operating-system failure without a more specific class.
	KindIO Kind = iota + 1
	// KindNotFound reports that the pipe path does not exist.
	KindNotFound
	// KindProtocol reports a broken frame stream: the peer closed
	// mid-frame or a declared length exceeded the reader's limit.
	KindProtocol
	// KindClosed reports use of a handle after Close.
	KindClosed
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindNotFound:
		return "not-found"
	case KindProtocol:
		return "protocol"
	case KindClosed:
		return "closed"
	}
	return "unknown"
}

// classify translates an error returned by the platform backend or the
// transfer loops into its semantic Kind.
func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrClosed):
		return KindClosed
	case errors.Is(err, ErrShortTransfer), errors.Is(err, ErrFrameTooLarge):
		return KindProtocol
	case isNotExist(err):
		return KindNotFound
	}
	return KindIO
}
