// Package server exposes a virtual gamepanel device over HTTP: a live MJPEG
// view of the panel, button and connectivity controls, and persisted screen
// snapshots.
package server

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"time"

	"github.com/gamepanel/glcd/store"
	"github.com/gamepanel/glcd/virtual"
	"github.com/hybridgroup/mjpeg"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Addr string

	Device *virtual.Device
	Store  store.Store
	Logger *logrus.Logger

	stream *mjpeg.Stream
}

func (s *Server) router() *httprouter.Router {
	mux := httprouter.New()

	mux.Handler(http.MethodGet, "/stream", s.stream)
	mux.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	mux.HandlerFunc(http.MethodGet, "/screen", s.getScreen)

	mux.HandlerFunc(http.MethodGet, "/buttons", s.getButtons)
	mux.HandlerFunc(http.MethodPut, "/buttons/:name", s.pressButton)
	mux.HandlerFunc(http.MethodDelete, "/buttons/:name", s.releaseButton)

	mux.HandlerFunc(http.MethodPut, "/devices/:class", s.plugDevice)
	mux.HandlerFunc(http.MethodDelete, "/devices/:class", s.unplugDevice)

	mux.HandlerFunc(http.MethodGet, "/snapshots", s.snapshots)
	mux.HandlerFunc(http.MethodGet, "/snapshots/:name", s.getSnapshot)
	mux.HandlerFunc(http.MethodPost, "/snapshots/:name", s.saveSnapshot)

	return mux
}

func (s *Server) Run(ctx context.Context) error {
	s.stream = mjpeg.NewStream()

	httpServer := &http.Server{
		Addr:              s.Addr,
		Handler:           s.router(),
		ReadTimeout:       time.Second * 15,
		ReadHeaderTimeout: time.Second * 15,
		IdleTimeout:       time.Second * 30,
		MaxHeaderBytes:    4096,
	}

	listenErrs := make(chan error)
	go func() {
		s.Logger.WithField("addr", s.Addr).Info("serving http")
		listenErrs <- httpServer.ListenAndServe()
	}()

	streamCtx, cancelStream := context.WithCancel(ctx)
	defer cancelStream()

	streamErrs := make(chan error)
	go func() {
		s.Logger.Info("starting frame stream")
		streamErrs <- s.runStream(streamCtx)
	}()

	select {
	case err := <-listenErrs:
		return err
	case err := <-streamErrs:
		httpServer.Shutdown(ctx)
		return err
	case <-ctx.Done():
		return httpServer.Shutdown(ctx)
	}
}

// runStream renders the panel at a fixed rate and feeds the MJPEG stream.
func (s *Server) runStream(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / 15)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			var buf bytes.Buffer
			if err := jpeg.Encode(&buf, s.screenImage(), nil); err != nil {
				return fmt.Errorf("encode frame: %w", err)
			}

			s.stream.UpdateJPEG(buf.Bytes())
			framesStreamed.Inc()
		}
	}
}

// screenImage renders whichever panel the running applet targets, preferring
// the color panel when both are in play.
func (s *Server) screenImage() image.Image {
	snap := s.Device.Snapshot()
	if snap.ColorTargeted {
		return s.Device.ColorImage()
	}

	return s.Device.MonoImage()
}
