// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/kont"
)

// Send is the effect operation for enqueuing one frame.
// Perform(Send{Payload: p}) writes p through the endpoint's Queue.
type Send struct {
	kont.Phantom[struct{}]
	Payload []byte
}

// DispatchPipe handles Send on the endpoint.
// Non-blocking: returns iox.ErrWouldBlock if the pipe buffer is full.
func (s Send) DispatchPipe(ep *Endpoint) (kont.Resumed, error) {
	if ep.queue == nil {
		return nil, ErrNoQueue
	}
	if err := ep.queue.TrySend(s.Payload); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Recv is the effect operation for dequeuing one frame.
// Perform(Recv{}) resumes with the payload read through the endpoint's Reader.
type Recv struct {
	kont.Phantom[[]byte]
}

// DispatchPipe handles Recv on the endpoint.
// Non-blocking: returns iox.ErrWouldBlock if no frame has begun to arrive
// or another reader holds the lock.
func (Recv) DispatchPipe(ep *Endpoint) (kont.Resumed, error) {
	if ep.reader == nil {
		return nil, ErrNoReader
	}
	msg, err := ep.reader.TryReceive()
	if err != nil {
		return nil, err
	}
	return msg, nil
}
