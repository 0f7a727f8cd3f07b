// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"os"

	"github.com/rs/zerolog"
)

// DefaultMode is the permission set of a FIFO made by Create: owner
// read, write and execute only.
const DefaultMode os.FileMode = 0o700

// Option configures a Queue or a Reader.
type Option func(*options)

type options struct {
	mode       os.FileMode
	logger     zerolog.Logger
	metrics    *Metrics
	maxMessage uint32
}

func newOptions(opts []Option) options {
	o := options{
		mode:       DefaultMode,
		logger:     zerolog.Nop(),
		maxMessage: MaxPayload,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMode sets the permission bits Create passes to mkfifo.
// The process umask still applies. Ignored by Open.
func WithMode(mode os.FileMode) Option {
	return func(o *options) { o.mode = mode.Perm() }
}

// WithLogger routes lifecycle and failure events to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics records frame, byte, retry and error counts into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithMaxMessageSize makes Receive reject frames declaring more than n
// payload bytes, before allocating. Ignored by Create.
func WithMaxMessageSize(n uint32) Option {
	return func(o *options) { o.maxMessage = n }
}
