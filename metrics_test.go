// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fifoq_test

import (
	"path/filepath"
	"testing"

	"code.hybscloud.com/fifoq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCountFramesAndBytes(t *testing.T) {
	m := fifoq.NewMetrics(prometheus.NewRegistry())
	path := pipePath(t)
	q := newQueue(t, path, fifoq.WithMetrics(m))
	r := newReader(t, path, fifoq.WithMetrics(m))

	for _, msg := range []string{"abc", "de"} {
		if err := q.Send([]byte(msg)); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Receive(); err != nil {
			t.Fatalf("Receive: %v", err)
		}
	}

	if got := testutil.ToFloat64(m.Frames.WithLabelValues("sent")); got != 2 {
		t.Fatalf("sent frames got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Frames.WithLabelValues("received")); got != 2 {
		t.Fatalf("received frames got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Bytes.WithLabelValues("sent")); got != 5 {
		t.Fatalf("sent bytes got %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.Bytes.WithLabelValues("received")); got != 5 {
		t.Fatalf("received bytes got %v, want 5", got)
	}
}

func TestMetricsCountErrors(t *testing.T) {
	m := fifoq.NewMetrics(prometheus.NewRegistry())
	_, err := fifoq.Open(filepath.Join(t.TempDir(), "missing"), fifoq.WithMetrics(m))
	if err == nil {
		t.Fatal("Open on a missing path succeeded")
	}
	if got := testutil.ToFloat64(m.Errors.WithLabelValues("open", "not-found")); got != 1 {
		t.Fatalf("open errors got %v, want 1", got)
	}
}

func TestMetricsRegisterOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	fifoq.NewMetrics(reg)
	defer func() {
		if recover() == nil {
			t.Fatal("second registration on one registry did not panic")
		}
	}()
	fifoq.NewMetrics(reg)
}
