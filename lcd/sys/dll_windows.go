//go:build windows

package sys

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// dll forwards every API call to the vendor's LogitechLcd.dll. The library is
// loaded lazily on the first call, so merely linking this package doesn't
// require the SDK to be installed.
type dll struct {
	init            *windows.LazyProc
	isConnected     *windows.LazyProc
	isButtonPressed *windows.LazyProc
	update          *windows.LazyProc
	monoBackground  *windows.LazyProc
	monoText        *windows.LazyProc
	colorBackground *windows.LazyProc
	colorTitle      *windows.LazyProc
	colorText       *windows.LazyProc
	shutdown        *windows.LazyProc
}

var _ API = (*dll)(nil)

// Default returns the backend bound to the vendor shared library.
func Default() API {
	lib := windows.NewLazyDLL("LogitechLcd.dll")
	return &dll{
		init:            lib.NewProc("LogiLcdInit"),
		isConnected:     lib.NewProc("LogiLcdIsConnected"),
		isButtonPressed: lib.NewProc("LogiLcdIsButtonPressed"),
		update:          lib.NewProc("LogiLcdUpdate"),
		monoBackground:  lib.NewProc("LogiLcdMonoSetBackground"),
		monoText:        lib.NewProc("LogiLcdMonoSetText"),
		colorBackground: lib.NewProc("LogiLcdColorSetBackground"),
		colorTitle:      lib.NewProc("LogiLcdColorSetTitle"),
		colorText:       lib.NewProc("LogiLcdColorSetText"),
		shutdown:        lib.NewProc("LogiLcdShutdown"),
	}
}

func (d *dll) Init(appName []uint16, deviceType uint32) bool {
	if d.init.Find() != nil {
		return false
	}
	r, _, _ := d.init.Call(uintptr(unsafe.Pointer(&appName[0])), uintptr(deviceType))
	return r != 0
}

func (d *dll) IsConnected(deviceType uint32) bool {
	r, _, _ := d.isConnected.Call(uintptr(deviceType))
	return r != 0
}

func (d *dll) IsButtonPressed(buttons uint32) bool {
	r, _, _ := d.isButtonPressed.Call(uintptr(buttons))
	return r != 0
}

func (d *dll) Update() {
	d.update.Call()
}

func (d *dll) MonoSetBackground(bytemap []byte) bool {
	r, _, _ := d.monoBackground.Call(uintptr(unsafe.Pointer(&bytemap[0])))
	return r != 0
}

func (d *dll) MonoSetText(line int, text []uint16) bool {
	r, _, _ := d.monoText.Call(uintptr(line), uintptr(unsafe.Pointer(&text[0])))
	return r != 0
}

func (d *dll) ColorSetBackground(bitmap []byte) bool {
	r, _, _ := d.colorBackground.Call(uintptr(unsafe.Pointer(&bitmap[0])))
	return r != 0
}

func (d *dll) ColorSetTitle(text []uint16, red, green, blue int) bool {
	r, _, _ := d.colorTitle.Call(uintptr(unsafe.Pointer(&text[0])), uintptr(red), uintptr(green), uintptr(blue))
	return r != 0
}

func (d *dll) ColorSetText(line int, text []uint16, red, green, blue int) bool {
	r, _, _ := d.colorText.Call(uintptr(line), uintptr(unsafe.Pointer(&text[0])), uintptr(red), uintptr(green), uintptr(blue))
	return r != 0
}

func (d *dll) Shutdown() {
	d.shutdown.Call()
}
