package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gamepanel/glcd/lcd"
	"github.com/gamepanel/glcd/lcd/sys"
)

// buttonsByName maps URL-friendly button names to their bitmask values.
var buttonsByName = map[string]lcd.Button{
	"mono0":  lcd.MonoButton0,
	"mono1":  lcd.MonoButton1,
	"mono2":  lcd.MonoButton2,
	"mono3":  lcd.MonoButton3,
	"left":   lcd.ColorButtonLeft,
	"right":  lcd.ColorButtonRight,
	"ok":     lcd.ColorButtonOk,
	"cancel": lcd.ColorButtonCancel,
	"up":     lcd.ColorButtonUp,
	"down":   lcd.ColorButtonDown,
	"menu":   lcd.ColorButtonMenu,
}

// classesByName maps URL-friendly device class names to their bitmask values.
var classesByName = map[string]uint32{
	"mono":  sys.TypeMono,
	"color": sys.TypeColor,
}

func errUnknownButton(name string) error {
	return fmt.Errorf("unknown button %q", name)
}

func errUnknownClass(name string) error {
	return fmt.Errorf("unknown device class %q", name)
}

type errorResponse struct {
	Error string `json:"error"`
}

// respond encodes the data to JSON and responds with it and the http code.
// Errors are wrapped in an error envelope first.
func respond(w http.ResponseWriter, data interface{}, httpCode int) {
	var resp interface{}
	if v, ok := data.(error); ok {
		resp = errorResponse{Error: v.Error()}
	} else {
		resp = data
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)

	if resp != nil {
		_ = json.NewEncoder(w).Encode(resp)
	}
}
