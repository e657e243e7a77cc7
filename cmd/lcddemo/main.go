// Command lcddemo is a sample applet for the lcd binding. It runs against a
// virtual device with an emulator server attached, so the panel can be
// watched at http://localhost:8080/stream and buttons injected over the HTTP
// API while the applet animates.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamepanel/glcd/lcd"
	"github.com/gamepanel/glcd/server"
	"github.com/gamepanel/glcd/store"
	"github.com/gamepanel/glcd/virtual"
	"github.com/sirupsen/logrus"
)

func main() {
	addr := flag.String("addr", ":8080", "emulator HTTP listen address")
	storePath := flag.String("store", "lcddemo.db", "snapshot store path")
	flag.Parse()

	logger := logrus.New()

	device := virtual.New()

	snapshots, err := store.OpenBBolt(*storePath, 0666, nil)
	if err != nil {
		logger.Fatalf("unable to open snapshot store: %s", err)
	}
	defer snapshots.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &server.Server{Addr: *addr, Device: device, Store: snapshots, Logger: logger}
	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Errorf("emulator server stopped: %s", err)
			stop()
		}
	}()

	if err := runApplet(ctx, device, logger); err != nil {
		logger.Fatalf("applet failed: %s", err)
	}
}

// runApplet drives both panels: a sweeping bar on the mono panel, a color
// wash on the color panel, and a frame counter on the text lines. Holding
// mono button 0 (PUT /buttons/mono0) inverts the mono panel.
func runApplet(ctx context.Context, device *virtual.Device, logger *logrus.Logger) error {
	handle, err := lcd.InitEither("lcddemo", lcd.WithAPI(device))
	if err != nil {
		return fmt.Errorf("unable to initialize LCD: %w", err)
	}
	defer handle.Close()

	logger.WithField("connected", handle.IsConnected()).Info("applet started")

	if err := handle.SetColorTitle("glcd demo", 255, 255, 255); err != nil {
		return err
	}

	bytemap := make([]byte, lcd.MonoWidth*lcd.MonoHeight)
	bitmap := make([]byte, lcd.ColorWidth*lcd.ColorHeight*lcd.ColorBytesPerPixel)

	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		inverted := handle.IsMonoButtonPressed(lcd.MonoButton0)
		drawSweep(bytemap, frame, inverted)
		if err := handle.SetMonoBackground(bytemap); err != nil {
			return err
		}

		drawWash(bitmap, frame)
		if err := handle.SetColorBackground(bitmap); err != nil {
			return err
		}

		status := fmt.Sprintf("frame %d", frame)
		if err := handle.SetMonoText(0, status); err != nil {
			return err
		}
		if err := handle.SetColorText(0, status, 0, 255, 128); err != nil {
			return err
		}

		handle.Update()
	}
}

// drawSweep paints a vertical bar sweeping across the mono panel.
func drawSweep(bytemap []byte, frame int, inverted bool) {
	bar := frame % lcd.MonoWidth

	for y := 0; y < lcd.MonoHeight; y++ {
		for x := 0; x < lcd.MonoWidth; x++ {
			lit := x == bar
			if inverted {
				lit = !lit
			}

			if lit {
				bytemap[y*lcd.MonoWidth+x] = 255
			} else {
				bytemap[y*lcd.MonoWidth+x] = 0
			}
		}
	}
}

// drawWash fills the color panel with a slowly shifting gradient. The SDK
// bitmap format is BGRA.
func drawWash(bitmap []byte, frame int) {
	for y := 0; y < lcd.ColorHeight; y++ {
		for x := 0; x < lcd.ColorWidth; x++ {
			i := (y*lcd.ColorWidth + x) * lcd.ColorBytesPerPixel
			bitmap[i+0] = byte(frame) // blue
			bitmap[i+1] = byte(y)     // green
			bitmap[i+2] = byte(x)     // red
			bitmap[i+3] = 0xff        // alpha
		}
	}
}
