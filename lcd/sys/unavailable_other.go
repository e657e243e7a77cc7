//go:build !windows

package sys

// The vendor SDK ships only as a Windows shared library. On every other
// platform the default backend reports failure from Init, so applets either
// inject a virtual device or get ErrInitialization back from the binding.
type unavailable struct{}

var _ API = unavailable{}

// Default returns a backend that cannot initialize on this platform.
func Default() API {
	return unavailable{}
}

func (unavailable) Init(appName []uint16, deviceType uint32) bool { return false }

func (unavailable) IsConnected(deviceType uint32) bool { return false }

func (unavailable) IsButtonPressed(buttons uint32) bool { return false }

func (unavailable) Update() {}

func (unavailable) MonoSetBackground(bytemap []byte) bool { return false }

func (unavailable) MonoSetText(line int, text []uint16) bool { return false }

func (unavailable) ColorSetBackground(bitmap []byte) bool { return false }

func (unavailable) ColorSetTitle(text []uint16, red, green, blue int) bool { return false }

func (unavailable) ColorSetText(line int, text []uint16, red, green, blue int) bool { return false }

func (unavailable) Shutdown() {}
