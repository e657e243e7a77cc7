package lcd

import "fmt"

// mono holds the operations gated on the monochrome device class. It is
// embedded in Mono and Both and nowhere else, which is what keeps these
// methods off a *Color at compile time.
type mono struct {
	dev *device
}

// IsMonoButtonPressed reports whether any of the given buttons, restricted to
// the mono panel's button set, is held down. The SDK only reports presses
// while the applet has foreground focus.
func (m mono) IsMonoButtonPressed(buttons Button) bool {
	return m.dev.api.IsButtonPressed(uint32(buttons & MonoButtons))
}

// SetMonoBackground draws a full-screen bytemap on the monochrome panel. The
// buffer must be exactly MonoWidth*MonoHeight bytes, one byte per pixel: a
// value >= 128 lights the pixel, anything lower leaves it off.
//
// A wrong-sized buffer is a contract violation and panics.
func (m mono) SetMonoBackground(bytemap []byte) error {
	if len(bytemap) != MonoWidth*MonoHeight*MonoBytesPerPixel {
		panic(fmt.Sprintf("lcd: mono background must be %d bytes, got %d",
			MonoWidth*MonoHeight*MonoBytesPerPixel, len(bytemap)))
	}

	if !m.dev.api.MonoSetBackground(bytemap) {
		return ErrMonoBackground
	}

	return nil
}

// SetMonoText puts text on one of the monochrome panel's four lines
// (0 through 3). An out-of-range line is a contract violation and panics.
func (m mono) SetMonoText(line int, text string) error {
	ws, err := encodeWide(text)
	if err != nil {
		return err
	}

	if line < 0 || line > 3 {
		panic(fmt.Sprintf("lcd: mono text line must be 0..3, got %d", line))
	}

	if !m.dev.api.MonoSetText(line, ws) {
		return ErrMonoText
	}

	return nil
}
