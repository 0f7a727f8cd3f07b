// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a pipe protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended pipe operation on ep.
// DispatchPipe is non-blocking: it returns iox.ErrWouldBlock when the
// pipe cannot make progress at a frame boundary.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried.
// Any other error is fatal for the protocol; the suspension is returned
// unconsumed and the caller should Discard it.
func Advance[R any](ep *Endpoint, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	pop, ok := susp.Op().(pipeDispatcher)
	if !ok {
		panic("fifoq: unhandled effect in Advance")
	}
	v, err := pop.DispatchPipe(ep)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
