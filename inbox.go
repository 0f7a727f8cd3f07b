// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// DefaultInboxCapacity is the prefetch depth used when Inbox is given a
// non-positive capacity.
const DefaultInboxCapacity = 64

// Inbox prefetches frames from a Reader on a background goroutine and
// hands them to one consumer through a bounded lock-free SPSC queue.
// Frames taken by the inbox are delivered only to its consumer.
//
// Poll, Next and Err must be called from a single goroutine.
type Inbox struct {
	reader *Reader
	q      lfq.SPSC[[]byte]
	stop   atomix.Uint32
	done   chan struct{}
	err    error
	// held is a frame the pump could not enqueue before stopping.
	held [][]byte
}

// Inbox starts prefetching up to capacity frames from r. The Reader must
// not be used directly until Stop returns.
func (r *Reader) Inbox(capacity int) *Inbox {
	if capacity <= 0 {
		capacity = DefaultInboxCapacity
	}
	in := &Inbox{reader: r, done: make(chan struct{})}
	in.q.Init(capacity)
	go in.pump()
	return in
}

// pump is the single producer. It polls with TryReceive so Stop is
// observed between frames.
func (in *Inbox) pump() {
	defer close(in.done)
	var bo iox.Backoff
	for in.stop.Load() == 0 {
		msg, err := in.reader.TryReceive()
		if iox.IsWouldBlock(err) {
			bo.Wait()
			continue
		}
		if err != nil {
			in.err = err
			return
		}
		bo.Reset()
		for in.q.Enqueue(&msg) != nil {
			if in.stop.Load() != 0 {
				in.held = append(in.held, msg)
				in.err = ErrClosed
				return
			}
			bo.Wait()
		}
		bo.Reset()
	}
	in.err = ErrClosed
}

// Poll returns the next prefetched payload, or iox.ErrWouldBlock if none
// is ready. After the pump has stopped and the queue is drained, Poll
// returns the error that stopped it.
func (in *Inbox) Poll() ([]byte, error) {
	msg, err := in.q.Dequeue()
	if err == nil {
		return msg, nil
	}
	select {
	case <-in.done:
	default:
		return nil, iox.ErrWouldBlock
	}
	// The pump may have enqueued a last frame before exiting.
	if msg, err := in.q.Dequeue(); err == nil {
		return msg, nil
	}
	if len(in.held) > 0 {
		msg = in.held[0]
		in.held = in.held[1:]
		return msg, nil
	}
	return nil, in.err
}

// Next waits with adaptive backoff until Poll returns a payload or a
// terminal error.
func (in *Inbox) Next() ([]byte, error) {
	var bo iox.Backoff
	for {
		msg, err := in.Poll()
		if !iox.IsWouldBlock(err) {
			return msg, err
		}
		bo.Wait()
	}
}

// Err returns the error that stopped the pump, or nil while it runs.
// ErrClosed means Stop was called.
func (in *Inbox) Err() error {
	select {
	case <-in.done:
		return in.err
	default:
		return nil
	}
}

// Stop halts prefetching and waits for the pump to exit. Every frame the
// pump already took from the pipe stays available to Poll.
func (in *Inbox) Stop() {
	in.stop.Add(1)
	<-in.done
}
