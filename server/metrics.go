package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesStreamed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glcd_frames_streamed_total",
		Help: "Number of panel frames rendered into the MJPEG stream.",
	})

	buttonPresses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glcd_button_presses_total",
		Help: "Number of button presses injected over the HTTP API.",
	}, []string{"button"})
)
