// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/kont"
)

// SendThen enqueues payload and then continues with next.
// Fuses Perform(Send{Payload: payload}) + Then.
func SendThen[B any](payload []byte, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Send{Payload: payload}), next)
}

// RecvBind dequeues a payload and passes it to f.
// Fuses Perform(Recv{}) + Bind.
func RecvBind[B any](f func([]byte) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Recv{}), f)
}
