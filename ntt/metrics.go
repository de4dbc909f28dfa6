// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ntt

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK            = "ok"
	resultInvalidDomain = "invalid_domain"
	resultDeviceError   = "device_error"
)

var transformLabels = []string{"direction", "type"}

type metrics struct {
	transforms *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		transforms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ntt_transforms_total",
				Help: "Number of NTT dispatches by direction, type and result",
			},
			[]string{"direction", "type", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ntt_transform_duration_seconds",
				Help:    "Time spent inside the compute engine per transform",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
			transformLabels,
		),
	}

	err := errors.Join(
		registerer.Register(m.transforms),
		registerer.Register(m.duration),
	)
	return m, err
}

func (m *metrics) observe(direction Direction, typ Type, result string, elapsed time.Duration) {
	m.transforms.WithLabelValues(direction.String(), typ.String(), result).Inc()
	if result != resultInvalidDomain {
		m.duration.WithLabelValues(direction.String(), typ.String()).Observe(elapsed.Seconds())
	}
}
