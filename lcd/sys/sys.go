// Package sys describes the foreign surface of the vendor's gamepanel LCD
// SDK. The binding in package lcd talks to the SDK exclusively through the
// API interface, so the real shared library can be swapped for an in-process
// implementation (see package virtual).
package sys

// Device class bitmask values, passed to Init and IsConnected. These match
// the LOGI_LCD_TYPE_* constants of the vendor headers and may be OR-ed
// together to target either device class.
const (
	TypeMono  uint32 = 0x00000001
	TypeColor uint32 = 0x00000002
)

// Geometry of the two device classes.
const (
	MonoWidth         = 160
	MonoHeight        = 43
	MonoBytesPerPixel = 1

	ColorWidth         = 320
	ColorHeight        = 240
	ColorBytesPerPixel = 4
)

// API is the set of SDK entry points the binding consumes. Every display
// string crosses the boundary as UTF-16 code units with a trailing zero
// terminator; callers are responsible for producing that form. All calls are
// synchronous and report failure as a bare false, the way the vendor library
// does.
type API interface {
	// Init makes the SDK target the device classes in deviceType and
	// registers the applet under the given name.
	Init(appName []uint16, deviceType uint32) bool

	// IsConnected reports whether a device matching deviceType is attached.
	IsConnected(deviceType uint32) bool

	// IsButtonPressed reports whether any button in the bitmask is held
	// while the applet has foreground focus.
	IsButtonPressed(buttons uint32) bool

	// Update pushes pending drawing state to the display. It must be called
	// once per frame.
	Update()

	MonoSetBackground(bytemap []byte) bool
	MonoSetText(line int, text []uint16) bool

	ColorSetBackground(bitmap []byte) bool
	ColorSetTitle(text []uint16, red, green, blue int) bool
	ColorSetText(line int, text []uint16, red, green, blue int) bool

	// Shutdown releases the SDK. Calling any other entry point afterwards is
	// undefined until the next Init.
	Shutdown()
}
