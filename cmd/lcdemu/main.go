// Command lcdemu runs a virtual gamepanel device behind the emulator HTTP
// API, so applets built against the lcd package can be watched and poked
// without the physical hardware.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/gamepanel/glcd/lcd/sys"
	"github.com/gamepanel/glcd/server"
	"github.com/gamepanel/glcd/store"
	"github.com/gamepanel/glcd/virtual"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "lcdemu.yaml", "path to the YAML config file")
	flag.Parse()

	logger := logrus.New()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatalf("unable to load config: %s", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("unable to parse log level: %s", err)
	}
	logger.SetLevel(level)

	device := virtual.New()
	device.Unplug(sys.TypeMono | sys.TypeColor)
	for _, class := range cfg.Devices {
		switch class {
		case "mono":
			device.Plug(sys.TypeMono)
		case "color":
			device.Plug(sys.TypeColor)
		default:
			logger.Fatalf("unknown device class %q in config", class)
		}
	}

	var snapshots store.Store
	switch cfg.Store.Engine {
	case "bbolt":
		snapshots, err = store.OpenBBolt(cfg.Store.Path, 0666, nil)
	case "badger":
		snapshots, err = store.OpenBadger(badger.DefaultOptions(cfg.Store.Path))
	default:
		logger.Fatalf("unknown store engine %q in config", cfg.Store.Engine)
	}
	if err != nil {
		logger.Fatalf("unable to open %s snapshot store: %s", cfg.Store.Engine, err)
	}
	defer snapshots.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &server.Server{
		Addr:   cfg.Listen,
		Device: device,
		Store:  snapshots,
		Logger: logger,
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("emulator server failed: %s", err)
	}
}
