// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fifoq provides a single-producer, multi-consumer message queue on a
// filesystem named pipe (FIFO).
//
// A producer enqueues discrete byte messages; any number of consumers, in any
// number of processes, dequeue them. Each message reaches exactly one
// consumer, whole, with no bytes of two messages interleaved.
//
// # Architecture
//
//   - Lifecycle: [Create] makes the FIFO and opens the write end; [Open] opens
//     a read end. Both descriptors are non-blocking. The FIFO is never removed
//     by this package.
//   - Framing: every message is a 4-byte big-endian length followed by the
//     payload ([AppendFrame], [DecodeLength]).
//   - Transfer: byte loops retry would-block conditions with adaptive backoff
//     via [code.hybscloud.com/iox.Backoff]; a zero-byte transfer mid-frame is
//     [ErrShortTransfer].
//   - Exclusion: [Reader.Receive] holds an exclusive flock(2) advisory lock on
//     the pipe for the length and payload reads and releases it on every
//     return path.
//   - Errors: failures are [*Error] values with a [Kind], the operation, the
//     path, the handle serial and the call site.
//
// # API Topologies
//
//   - Blocking: [Queue.Send], [Reader.Receive]. No timeout or cancellation.
//   - Non-blocking: [Queue.TrySend], [Reader.TryReceive] return
//     [code.hybscloud.com/iox.ErrWouldBlock] at the frame boundary.
//   - Protocols: [Send] and [Recv] are [code.hybscloud.com/kont] effects on an
//     [Endpoint]. [Exec], [ExecExpr] and [Run] evaluate them to completion;
//     [Step] and [Advance] evaluate one effect at a time for proactor loops.
//   - Prefetch: [Reader.Inbox] moves frames to a lock-free SPSC queue
//     ([code.hybscloud.com/lfq]) drained with [Inbox.Poll] or [Inbox.Next].
//
// # Example
//
//	q, _ := fifoq.Create("/tmp/jobs")
//	r, _ := fifoq.Open("/tmp/jobs")
//	_ = q.Send([]byte("Hello, reader!"))
//	msg, _ := r.Receive()
package fifoq
