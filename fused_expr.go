// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/kont"
)

// Pre-boxed values shared by every Expr-world protocol.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprRecv        kont.Erased = Recv{}
)

// passResume hands the dispatch result to the next frame unchanged.
func passResume(v kont.Erased) kont.Erased { return v }

// ExprSendThen enqueues payload and then continues with next.
// Fuses ExprPerform(Send{Payload: payload}) + ExprThen.
func ExprSendThen[B any](payload []byte, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Send{Payload: payload}
	ef.Resume = passResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func recvUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func([]byte) kont.Expr[B])
	result := f(current.([]byte))
	return kont.Erased(result.Value), result.Frame
}

// ExprRecvBind dequeues a payload and passes it to f.
// Fuses ExprPerform(Recv{}) + ExprBind.
func ExprRecvBind[B any](f func([]byte) kont.Expr[B]) kont.Expr[B] {
	uf := kont.AcquireUnwindFrame()
	uf.Data1 = f
	uf.Unwind = recvUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprRecv
	ef.Resume = passResume
	ef.Next = uf
	return kont.ExprSuspend[B](ef)
}
