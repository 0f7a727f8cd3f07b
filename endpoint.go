// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Endpoint is the pipe side a protocol performs its effects on.
// Send effects go to the Queue and Recv effects come from the Reader;
// either may be nil when the protocol only uses the other.
type Endpoint struct {
	queue  *Queue
	reader *Reader
}

// NewEndpoint binds q and r for protocol evaluation.
func NewEndpoint(q *Queue, r *Reader) *Endpoint {
	return &Endpoint{queue: q, reader: r}
}

// Queue returns the bound Queue, or nil.
func (ep *Endpoint) Queue() *Queue { return ep.queue }

// Reader returns the bound Reader, or nil.
func (ep *Endpoint) Reader() *Reader { return ep.reader }

// pipeDispatcher is the structural interface for pipe operations.
// DispatchPipe is non-blocking: it returns iox.ErrWouldBlock at the
// frame boundary when the pipe cannot make progress.
type pipeDispatcher interface {
	DispatchPipe(ep *Endpoint) (kont.Resumed, error)
}

// pipeHandler implements kont.Handler for pipe effects.
// Would-block waits with iox.Backoff; any other error short-circuits
// the protocol with Left(err).
type pipeHandler[R any] struct {
	ep *Endpoint
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h pipeHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	pop, ok := op.(pipeDispatcher)
	if !ok {
		panic("fifoq: unhandled effect in pipeHandler")
	}
	v, err := dispatchWait(h.ep, pop)
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// dispatchWait retries DispatchPipe until it succeeds or fails with an
// error other than iox.ErrWouldBlock.
func dispatchWait(ep *Endpoint, pop pipeDispatcher) (kont.Resumed, error) {
	var bo iox.Backoff
	for {
		v, err := pop.DispatchPipe(ep)
		if err == nil {
			return v, nil
		}
		if !iox.IsWouldBlock(err) {
			return nil, err
		}
		bo.Wait()
	}
}
