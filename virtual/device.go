// Package virtual implements the vendor SDK surface in process, backed by
// in-memory framebuffers. It stands in for the real shared library on
// machines without the hardware: wire it into the binding with
// lcd.WithAPI(dev), poke buttons and connectivity from tests or from the
// emulator server, and render the panel contents as images.
package virtual

import (
	"image"
	"sync"
	"unicode/utf16"

	"github.com/gamepanel/glcd/lcd"
	"github.com/gamepanel/glcd/lcd/sys"
)

const textLines = 4

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type monoState struct {
	background [sys.MonoWidth * sys.MonoHeight]byte
	lines      [textLines]string
}

type colorState struct {
	background [sys.ColorWidth * sys.ColorHeight * sys.ColorBytesPerPixel]byte
	title      string
	titleColor RGB
	lines      [textLines]string
	lineColors [textLines]RGB
}

type panelState struct {
	mono  monoState
	color colorState
}

// Device is a virtual gamepanel. Draw and text calls land in pending state;
// Update latches pending state into the displayed state, the same way the
// real SDK pushes buffered drawing to the panel once per frame.
//
// A Device is safe for concurrent use, so the emulator server can read the
// screen while an applet draws on it.
type Device struct {
	mu sync.Mutex

	plugged    uint32 // device classes physically "attached"
	running    bool
	appName    string
	deviceType uint32 // classes requested by Init

	held       lcd.Button
	foreground bool

	pending   panelState
	displayed panelState
	frames    uint64
}

var _ sys.API = (*Device)(nil)

// New returns a virtual device with both panel classes attached and the
// applet treated as having foreground focus.
func New() *Device {
	return &Device{
		plugged:    sys.TypeMono | sys.TypeColor,
		foreground: true,
	}
}

// Init implements sys.API. It fails if the device is already initialized or
// the applet name is not properly terminated.
func (d *Device) Init(appName []uint16, deviceType uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running || deviceType == 0 {
		return false
	}

	name, ok := decodeWide(appName)
	if !ok {
		return false
	}

	d.running = true
	d.appName = name
	d.deviceType = deviceType
	d.held = 0
	d.pending = panelState{}
	d.displayed = panelState{}
	d.frames = 0

	return true
}

// IsConnected implements sys.API.
func (d *Device) IsConnected(deviceType uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.running && d.plugged&deviceType != 0
}

// IsButtonPressed implements sys.API. Presses are only reported while the
// applet is foreground, matching the SDK.
func (d *Device) IsButtonPressed(buttons uint32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.running && d.foreground && uint32(d.held)&buttons != 0
}

// Update implements sys.API, latching pending drawing state into the
// displayed state.
func (d *Device) Update() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return
	}

	d.displayed = d.pending
	d.frames++
}

// MonoSetBackground implements sys.API.
func (d *Device) MonoSetBackground(bytemap []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.monoTarget() || len(bytemap) != len(d.pending.mono.background) {
		return false
	}

	copy(d.pending.mono.background[:], bytemap)
	return true
}

// MonoSetText implements sys.API.
func (d *Device) MonoSetText(line int, text []uint16) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.monoTarget() || line < 0 || line >= textLines {
		return false
	}

	s, ok := decodeWide(text)
	if !ok {
		return false
	}

	d.pending.mono.lines[line] = s
	return true
}

// ColorSetBackground implements sys.API.
func (d *Device) ColorSetBackground(bitmap []byte) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.colorTarget() || len(bitmap) != len(d.pending.color.background) {
		return false
	}

	copy(d.pending.color.background[:], bitmap)
	return true
}

// ColorSetTitle implements sys.API.
func (d *Device) ColorSetTitle(text []uint16, red, green, blue int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.colorTarget() {
		return false
	}

	s, ok := decodeWide(text)
	if !ok {
		return false
	}

	d.pending.color.title = s
	d.pending.color.titleColor = clampRGB(red, green, blue)
	return true
}

// ColorSetText implements sys.API.
func (d *Device) ColorSetText(line int, text []uint16, red, green, blue int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.colorTarget() || line < 0 || line >= textLines {
		return false
	}

	s, ok := decodeWide(text)
	if !ok {
		return false
	}

	d.pending.color.lines[line] = s
	d.pending.color.lineColors[line] = clampRGB(red, green, blue)
	return true
}

// Shutdown implements sys.API. The displayed state is kept around so the
// emulator can still show the last frame, like a real panel holding its
// image until the applet list refreshes.
func (d *Device) Shutdown() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.running = false
	d.appName = ""
	d.deviceType = 0
}

// monoTarget reports whether mono draw calls are currently accepted.
// Callers hold d.mu.
func (d *Device) monoTarget() bool {
	return d.running && d.deviceType&sys.TypeMono != 0
}

func (d *Device) colorTarget() bool {
	return d.running && d.deviceType&sys.TypeColor != 0
}

// Plug attaches the given device classes, making IsConnected report true for
// them.
func (d *Device) Plug(deviceType uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.plugged |= deviceType
}

// Unplug detaches the given device classes.
func (d *Device) Unplug(deviceType uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.plugged &^= deviceType
}

// Press holds down the given buttons until Release.
func (d *Device) Press(buttons lcd.Button) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.held |= buttons
}

// Release lets go of the given buttons.
func (d *Device) Release(buttons lcd.Button) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.held &^= buttons
}

// Held returns the buttons currently held down.
func (d *Device) Held() lcd.Button {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.held
}

// SetForeground controls whether the applet is treated as having foreground
// focus. While false, IsButtonPressed reports nothing.
func (d *Device) SetForeground(fg bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.foreground = fg
}

// Frames returns how many Update calls have completed since Init.
func (d *Device) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.frames
}

// MonoImage renders the displayed monochrome background: bytes >= 128 are
// lit (white), everything else is off (black).
func (d *Device) MonoImage() *image.Gray {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := image.NewGray(image.Rect(0, 0, sys.MonoWidth, sys.MonoHeight))
	for i, b := range d.displayed.mono.background {
		if b >= 128 {
			img.Pix[i] = 0xff
		}
	}

	return img
}

// ColorImage renders the displayed color background. The SDK bitmap format
// is BGRA, so the channels are swizzled into a standard RGBA image.
func (d *Device) ColorImage() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, sys.ColorWidth, sys.ColorHeight))
	src := d.displayed.color.background[:]
	for i := 0; i+3 < len(src); i += 4 {
		img.Pix[i+0] = src[i+2]
		img.Pix[i+1] = src[i+1]
		img.Pix[i+2] = src[i+0]
		img.Pix[i+3] = src[i+3]
	}

	return img
}

func clampRGB(r, g, b int) RGB {
	return RGB{R: clamp8(r), G: clamp8(g), B: clamp8(b)}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// decodeWide undoes the SDK wire format: UTF-16 code units with a single
// trailing zero terminator.
func decodeWide(units []uint16) (string, bool) {
	if len(units) == 0 || units[len(units)-1] != 0 {
		return "", false
	}

	return string(utf16.Decode(units[:len(units)-1])), true
}
