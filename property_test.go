// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq_test

import (
	"bytes"
	"testing"
	"testing/quick"

	"code.hybscloud.com/fifoq"
)

// TestPropertyRoundTrip: any sequence of small messages sent on one queue
// is received whole and in order.
func TestPropertyRoundTrip(t *testing.T) {
	path := pipePath(t)
	q := newQueue(t, path)
	r := newReader(t, path)

	f := func(msgs [][]byte) bool {
		// Keep the batch below the pipe buffer so Send never waits on us.
		total := 0
		for _, m := range msgs {
			total += fifoq.HeaderSize + len(m)
		}
		if total > 4096 {
			return true
		}
		for _, m := range msgs {
			if err := q.Send(m); err != nil {
				return false
			}
		}
		for _, want := range msgs {
			got, err := r.Receive()
			if err != nil || !bytes.Equal(got, want) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

// TestPropertyFrameLength: the header of every frame decodes to the
// payload length.
func TestPropertyFrameLength(t *testing.T) {
	f := func(payload []byte) bool {
		frame := fifoq.AppendFrame(nil, payload)
		return len(frame) == fifoq.HeaderSize+len(payload) &&
			fifoq.DecodeLength(frame) == uint32(len(payload)) &&
			bytes.Equal(frame[fifoq.HeaderSize:], payload)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
