// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/kont"
)

// Exec runs a Cont-world pipe protocol on ep and returns its result.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff);
// the first other error stops the protocol and is returned.
func Exec[R any](ep *Endpoint, protocol kont.Eff[R]) (R, error) {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return unwrapEither(kont.Handle(wrapped, pipeHandler[R]{ep: ep}))
}

// ExecExpr runs an Expr-world pipe protocol on ep and returns its result.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff);
// the first other error stops the protocol and is returned.
func ExecExpr[R any](ep *Endpoint, protocol kont.Expr[R]) (R, error) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return unwrapEither(kont.HandleExpr(wrapped, pipeHandler[R]{ep: ep}))
}

func unwrapEither[R any](e kont.Either[error, R]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, err
	}
	r, _ := e.GetRight()
	return r, nil
}
