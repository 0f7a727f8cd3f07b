// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run runs two Cont-world protocols on ep and returns both results.
// See RunExpr.
func Run[A, B any](ep *Endpoint, a kont.Eff[A], b kont.Eff[B]) (A, B, error) {
	return RunExpr(ep, kont.Reify(a), kont.Reify(b))
}

// RunExpr interleaves two Expr-world protocols on the calling goroutine,
// typically a producer and a consumer sharing a loopback endpoint.
// Waits with adaptive backoff (iox.Backoff) when neither side can make
// progress. Does not spawn goroutines or create channels.
//
// A frame, once started, is finished before control returns, so each
// frame must fit in the pipe buffer when both sides share a goroutine.
// The first fatal error discards both protocols and is returned.
func RunExpr[A, B any](ep *Endpoint, a kont.Expr[A], b kont.Expr[B]) (A, B, error) {
	resultA, suspA := Step(a)
	resultB, suspB := Step(b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, next, err := Advance(ep, suspA)
			switch {
			case err == nil:
				resultA, suspA = v, next
				progress = true
			case !iox.IsWouldBlock(err):
				return failRun[A, B](suspA, suspB, err)
			}
		}
		if suspB != nil {
			v, next, err := Advance(ep, suspB)
			switch {
			case err == nil:
				resultB, suspB = v, next
				progress = true
			case !iox.IsWouldBlock(err):
				return failRun[A, B](suspA, suspB, err)
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB, nil
}

func failRun[A, B any](suspA *kont.Suspension[A], suspB *kont.Suspension[B], err error) (A, B, error) {
	if suspA != nil {
		suspA.Discard()
	}
	if suspB != nil {
		suspB.Discard()
	}
	var zeroA A
	var zeroB B
	return zeroA, zeroB, err
}
