// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/fifoq"
	"code.hybscloud.com/iox"
)

func TestInboxDeliversInOrder(t *testing.T) {
	skipRace(t)
	path := pipePath(t)
	q := newQueue(t, path)
	in := newReader(t, path).Inbox(4)
	defer in.Stop()

	if _, err := in.Poll(); !iox.IsWouldBlock(err) {
		t.Fatalf("Poll on empty inbox got %v, want ErrWouldBlock", err)
	}
	for i := 0; i < 10; i++ {
		if err := q.Send([]byte(fmt.Sprintf("m%d", i))); err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
	}
	for i := 0; i < 10; i++ {
		msg, err := in.Next()
		if err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
		if want := fmt.Sprintf("m%d", i); string(msg) != want {
			t.Fatalf("got %q, want %q", msg, want)
		}
	}
	if err := in.Err(); err != nil {
		t.Fatalf("Err while running: %v", err)
	}
}

func TestInboxStopsWhenWriterCloses(t *testing.T) {
	skipRace(t)
	path := pipePath(t)
	q := newQueue(t, path)
	in := newReader(t, path).Inbox(0)
	defer in.Stop()

	if err := q.Send([]byte("last")); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := q.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	msg, err := in.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if string(msg) != "last" {
		t.Fatalf("got %q, want %q", msg, "last")
	}
	_, err = in.Next()
	if !errors.Is(err, fifoq.ErrShortTransfer) {
		t.Fatalf("got %v, want ErrShortTransfer", err)
	}
	if !errors.Is(in.Err(), fifoq.ErrShortTransfer) {
		t.Fatalf("Err got %v, want ErrShortTransfer", in.Err())
	}
}

func TestInboxStopKeepsPrefetched(t *testing.T) {
	skipRace(t)
	path := pipePath(t)
	q := newQueue(t, path)
	r := newReader(t, path)

	for i := 0; i < 3; i++ {
		if err := q.Send([]byte{byte(i)}); err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
	}
	in := r.Inbox(2)
	first, err := in.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	in.Stop()

	got := []byte{first[0]}
	for {
		msg, err := in.Poll()
		if errors.Is(err, fifoq.ErrClosed) {
			break
		}
		if err != nil {
			t.Fatalf("Poll after Stop: %v", err)
		}
		got = append(got, msg[0])
	}
	// Frames the pump did not take are still in the pipe.
	for len(got) < 3 {
		msg, err := r.Receive()
		if err != nil {
			t.Fatalf("Receive after Stop: %v", err)
		}
		got = append(got, msg[0])
	}
	for i, b := range got {
		if int(b) != i {
			t.Fatalf("frame %d got %d: order or delivery broken: %v", i, b, got)
		}
	}
}
