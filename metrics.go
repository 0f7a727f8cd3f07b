// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	dirSent     = "sent"
	dirReceived = "received"
)

// Metrics holds the Prometheus collectors shared by any number of handles.
// A nil *Metrics records nothing.
type Metrics struct {
	Frames     *prometheus.CounterVec
	Bytes      *prometheus.CounterVec
	WouldBlock *prometheus.CounterVec
	Errors     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if registration fails, like promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Frames: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fifoq",
			Name:      "frames_total",
			Help:      "Frames moved through named pipes, by direction.",
		}, []string{"dir"}),
		Bytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fifoq",
			Name:      "bytes_total",
			Help:      "Payload bytes moved through named pipes, by direction.",
		}, []string{"dir"}),
		WouldBlock: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fifoq",
			Name:      "would_block_total",
			Help:      "Would-block retries absorbed by blocking operations.",
		}, []string{"op"}),
		Errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fifoq",
			Name:      "errors_total",
			Help:      "Failed pipe operations, by operation and kind.",
		}, []string{"op", "kind"}),
	}
}

func (m *Metrics) frame(dir string, n int) {
	if m == nil {
		return
	}
	m.Frames.WithLabelValues(dir).Inc()
	m.Bytes.WithLabelValues(dir).Add(float64(n))
}

func (m *Metrics) waited(op string, waits int) {
	if m == nil || waits == 0 {
		return
	}
	m.WouldBlock.WithLabelValues(op).Add(float64(waits))
}

func (m *Metrics) failure(op string, kind Kind) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(op, kind.String()).Inc()
}
