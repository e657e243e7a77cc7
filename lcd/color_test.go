package lcd

import (
	"errors"
	"testing"
)

func initColorForTest(t *testing.T, api *fakeAPI) *Color {
	t.Helper()

	handle, err := InitColor("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitColor: %v", err)
	}
	t.Cleanup(func() { handle.Close() })

	return handle
}

func TestSetColorBackground(t *testing.T) {
	api := newFakeAPI()
	handle := initColorForTest(t, api)

	bitmap := make([]byte, ColorWidth*ColorHeight*ColorBytesPerPixel)
	if err := handle.SetColorBackground(bitmap); err != nil {
		t.Fatalf("SetColorBackground: %v", err)
	}

	api.colorBackgroundOK = false
	if err := handle.SetColorBackground(bitmap); !errors.Is(err, ErrColorBackground) {
		t.Errorf("SetColorBackground error = %v, want ErrColorBackground", err)
	}

	mustPanic(t, "wrong-sized color background", func() {
		handle.SetColorBackground(make([]byte, ColorWidth*ColorHeight))
	})
}

func TestSetColorTitle(t *testing.T) {
	api := newFakeAPI()
	handle := initColorForTest(t, api)

	if err := handle.SetColorTitle("status", 10, 20, 30); err != nil {
		t.Fatalf("SetColorTitle: %v", err)
	}
	if api.lastRGB != [3]int{10, 20, 30} {
		t.Errorf("forwarded RGB = %v, want [10 20 30]", api.lastRGB)
	}

	api.colorTitleOK = false
	if err := handle.SetColorTitle("status", 0, 0, 0); !errors.Is(err, ErrColorTitle) {
		t.Errorf("SetColorTitle error = %v, want ErrColorTitle", err)
	}

	if err := handle.SetColorTitle("sta\x00tus", 0, 0, 0); !errors.Is(err, ErrNullCharacter) {
		t.Errorf("SetColorTitle error = %v, want ErrNullCharacter", err)
	}
}

func TestSetColorText(t *testing.T) {
	api := newFakeAPI()
	handle := initColorForTest(t, api)

	for line := 0; line <= 3; line++ {
		if err := handle.SetColorText(line, "hello", 255, 128, 0); err != nil {
			t.Fatalf("SetColorText(%d): %v", line, err)
		}
		if api.lastLine != line {
			t.Errorf("forwarded line = %d, want %d", api.lastLine, line)
		}
	}

	api.colorTextOK = false
	if err := handle.SetColorText(0, "hello", 0, 0, 0); !errors.Is(err, ErrColorText) {
		t.Errorf("SetColorText error = %v, want ErrColorText", err)
	}

	for _, line := range []int{-1, 4, 100} {
		mustPanic(t, "out-of-range color text line", func() {
			handle.SetColorText(line, "hello", 0, 0, 0)
		})
	}

	before := api.foreignCalls
	if err := handle.SetColorText(0, "he\x00llo", 0, 0, 0); !errors.Is(err, ErrNullCharacter) {
		t.Errorf("SetColorText error = %v, want ErrNullCharacter", err)
	}
	if api.foreignCalls != before {
		t.Error("text with embedded NUL still crossed the boundary")
	}
}

func TestColorButtonMasking(t *testing.T) {
	api := newFakeAPI()
	handle := initColorForTest(t, api)

	handle.IsColorButtonPressed(ColorButtonUp | MonoButton0 | MonoButton3)

	if api.lastButtons != uint32(ColorButtonUp) {
		t.Errorf("queried buttons = %#x, want %#x", api.lastButtons, uint32(ColorButtonUp))
	}
}
