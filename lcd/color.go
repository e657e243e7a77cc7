package lcd

import "fmt"

// color holds the operations gated on the color device class, embedded in
// Color and Both only.
type color struct {
	dev *device
}

// IsColorButtonPressed reports whether any of the given buttons, restricted
// to the color panel's button set, is held down. The SDK only reports presses
// while the applet has foreground focus.
func (c color) IsColorButtonPressed(buttons Button) bool {
	return c.dev.api.IsButtonPressed(uint32(buttons & ColorButtons))
}

// SetColorBackground draws a full-screen bitmap on the color panel. The
// buffer must be exactly ColorWidth*ColorHeight*ColorBytesPerPixel bytes in
// the SDK's BGRA byte order.
//
// A wrong-sized buffer is a contract violation and panics.
func (c color) SetColorBackground(bitmap []byte) error {
	if len(bitmap) != ColorWidth*ColorHeight*ColorBytesPerPixel {
		panic(fmt.Sprintf("lcd: color background must be %d bytes, got %d",
			ColorWidth*ColorHeight*ColorBytesPerPixel, len(bitmap)))
	}

	if !c.dev.api.ColorSetBackground(bitmap) {
		return ErrColorBackground
	}

	return nil
}

// SetColorTitle puts the title line on the color panel in the given RGB
// color.
func (c color) SetColorTitle(text string, red, green, blue uint8) error {
	ws, err := encodeWide(text)
	if err != nil {
		return err
	}

	if !c.dev.api.ColorSetTitle(ws, int(red), int(green), int(blue)) {
		return ErrColorTitle
	}

	return nil
}

// SetColorText puts text on one of the color panel's lines (0 through 3) in
// the given RGB color. An out-of-range line is a contract violation and
// panics.
func (c color) SetColorText(line int, text string, red, green, blue uint8) error {
	ws, err := encodeWide(text)
	if err != nil {
		return err
	}

	if line < 0 || line > 3 {
		panic(fmt.Sprintf("lcd: color text line must be 0..3, got %d", line))
	}

	if !c.dev.api.ColorSetText(line, ws, int(red), int(green), int(blue)) {
		return ErrColorText
	}

	return nil
}
