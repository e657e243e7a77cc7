package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (s *Server) getScreen(res http.ResponseWriter, req *http.Request) {
	respond(res, s.Device.Snapshot(), http.StatusOK)
}

func (s *Server) getButtons(res http.ResponseWriter, req *http.Request) {
	held := s.Device.Held()

	names := make([]string, 0)
	for name, button := range buttonsByName {
		if held&button != 0 {
			names = append(names, name)
		}
	}

	respond(res, names, http.StatusOK)
}

func (s *Server) pressButton(res http.ResponseWriter, req *http.Request) {
	params := httprouter.ParamsFromContext(req.Context())
	name := params.ByName("name")

	button, ok := buttonsByName[name]
	if !ok {
		respond(res, errUnknownButton(name), http.StatusNotFound)
		return
	}

	s.Device.Press(button)
	buttonPresses.WithLabelValues(name).Inc()

	respond(res, nil, http.StatusNoContent)
}

func (s *Server) releaseButton(res http.ResponseWriter, req *http.Request) {
	params := httprouter.ParamsFromContext(req.Context())
	name := params.ByName("name")

	button, ok := buttonsByName[name]
	if !ok {
		respond(res, errUnknownButton(name), http.StatusNotFound)
		return
	}

	s.Device.Release(button)

	respond(res, nil, http.StatusNoContent)
}

func (s *Server) plugDevice(res http.ResponseWriter, req *http.Request) {
	params := httprouter.ParamsFromContext(req.Context())
	class := params.ByName("class")

	deviceType, ok := classesByName[class]
	if !ok {
		respond(res, errUnknownClass(class), http.StatusNotFound)
		return
	}

	s.Device.Plug(deviceType)

	respond(res, nil, http.StatusNoContent)
}

func (s *Server) unplugDevice(res http.ResponseWriter, req *http.Request) {
	params := httprouter.ParamsFromContext(req.Context())
	class := params.ByName("class")

	deviceType, ok := classesByName[class]
	if !ok {
		respond(res, errUnknownClass(class), http.StatusNotFound)
		return
	}

	s.Device.Unplug(deviceType)

	respond(res, nil, http.StatusNoContent)
}

func (s *Server) snapshots(res http.ResponseWriter, req *http.Request) {
	names, err := s.Store.ListSnapshots()
	if err != nil {
		respond(res, err, http.StatusInternalServerError)
		return
	}

	respond(res, names, http.StatusOK)
}

func (s *Server) getSnapshot(res http.ResponseWriter, req *http.Request) {
	params := httprouter.ParamsFromContext(req.Context())
	name := params.ByName("name")

	snap, err := s.Store.Snapshot(name)
	if err != nil {
		respond(res, err, http.StatusInternalServerError)
		return
	}

	respond(res, snap, http.StatusOK)
}

func (s *Server) saveSnapshot(res http.ResponseWriter, req *http.Request) {
	params := httprouter.ParamsFromContext(req.Context())
	name := params.ByName("name")

	if err := s.Store.PutSnapshot(name, s.Device.Snapshot()); err != nil {
		respond(res, err, http.StatusInternalServerError)
		return
	}

	respond(res, nil, http.StatusCreated)
}
