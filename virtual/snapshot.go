package virtual

import (
	"github.com/gamepanel/glcd/lcd/sys"
)

// Snapshot is a point-in-time copy of the device's displayed state, shaped
// for JSON so the emulator server can return it and the store can persist it.
type Snapshot struct {
	AppName        string `json:"appName"`
	Running        bool   `json:"running"`
	MonoConnected  bool   `json:"monoConnected"`
	ColorConnected bool   `json:"colorConnected"`
	MonoTargeted   bool   `json:"monoTargeted"`
	ColorTargeted  bool   `json:"colorTargeted"`
	Frames         uint64 `json:"frames"`

	Mono  MonoScreen  `json:"mono"`
	Color ColorScreen `json:"color"`
}

// MonoScreen is the displayed state of the monochrome panel. Background is
// the raw one-byte-per-pixel bytemap (base64 in JSON).
type MonoScreen struct {
	Lines      [4]string `json:"lines"`
	Background []byte    `json:"background"`
}

// ColorScreen is the displayed state of the color panel. Background is the
// raw BGRA bitmap (base64 in JSON).
type ColorScreen struct {
	Title      string    `json:"title"`
	TitleColor RGB       `json:"titleColor"`
	Lines      [4]string `json:"lines"`
	LineColors [4]RGB    `json:"lineColors"`
	Background []byte    `json:"background"`
}

// Snapshot copies the current displayed state.
func (d *Device) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := Snapshot{
		AppName:        d.appName,
		Running:        d.running,
		MonoConnected:  d.plugged&sys.TypeMono != 0,
		ColorConnected: d.plugged&sys.TypeColor != 0,
		MonoTargeted:   d.deviceType&sys.TypeMono != 0,
		ColorTargeted:  d.deviceType&sys.TypeColor != 0,
		Frames:         d.frames,
		Mono: MonoScreen{
			Lines:      d.displayed.mono.lines,
			Background: append([]byte(nil), d.displayed.mono.background[:]...),
		},
		Color: ColorScreen{
			Title:      d.displayed.color.title,
			TitleColor: d.displayed.color.titleColor,
			Lines:      d.displayed.color.lines,
			LineColors: d.displayed.color.lineColors,
			Background: append([]byte(nil), d.displayed.color.background[:]...),
		},
	}

	return snap
}
