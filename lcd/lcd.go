// Package lcd binds the vendor's gamepanel LCD SDK behind handles whose
// method sets are fixed at compile time by how the connection was opened.
//
// The SDK drives two device classes: a 160x43 monochrome panel and a 320x240
// color panel. InitMono, InitColor and InitEither are the only ways to obtain
// a handle, and each returns a distinct concrete type: a *Mono only carries
// the mono drawing methods, a *Color only the color ones, and a *Both carries
// the union. Calling a color operation on a mono handle is a compile error,
// not a runtime check.
//
// Because not every caller cares which concrete handle it holds, the package
// also defines capability interfaces. Code that only needs the lifecycle can
// accept a Device; code that draws on a mono panel can accept a MonoDevice,
// which *Mono and *Both both satisfy.
//
// The underlying SDK is a process-wide singleton with no instance concept, so
// at most one handle may be live at a time. Go has no scope-exit destructor:
// callers must defer Close on the handle, which shuts the SDK down exactly
// once and lets a later Init* call succeed.
package lcd

import (
	"sync"
	"sync/atomic"

	"github.com/gamepanel/glcd/lcd/sys"
)

// Display geometry, re-exported from the foreign surface.
const (
	MonoWidth         = sys.MonoWidth
	MonoHeight        = sys.MonoHeight
	MonoBytesPerPixel = sys.MonoBytesPerPixel

	ColorWidth         = sys.ColorWidth
	ColorHeight        = sys.ColorHeight
	ColorBytesPerPixel = sys.ColorBytesPerPixel
)

// Device is the capability-independent surface every handle satisfies.
type Device interface {
	// IsConnected re-queries the SDK for whether a device matching the
	// handle's class is currently attached.
	IsConnected() bool

	// Update pushes pending drawing state to the display. Call it once per
	// frame. The underlying call reports no failure, so neither does this.
	Update()

	// Close shuts the SDK down and releases the process-wide claim so a
	// later Init* call may succeed. Safe to call more than once; only the
	// first call has any effect.
	Close() error
}

// MonoDevice describes a handle that can drive the monochrome panel.
// *Mono and *Both satisfy it.
type MonoDevice interface {
	Device

	IsMonoButtonPressed(buttons Button) bool
	SetMonoBackground(bytemap []byte) error
	SetMonoText(line int, text string) error
}

// ColorDevice describes a handle that can drive the color panel.
// *Color and *Both satisfy it.
type ColorDevice interface {
	Device

	IsColorButtonPressed(buttons Button) bool
	SetColorBackground(bitmap []byte) error
	SetColorTitle(text string, red, green, blue uint8) error
	SetColorText(line int, text string, red, green, blue uint8) error
}

// Mono is a handle initialized for the monochrome device class only.
type Mono struct {
	*device
	mono
}

// Color is a handle initialized for the color device class only.
type Color struct {
	*device
	color
}

// Both is a handle initialized for either device class and carries the
// operations of both.
type Both struct {
	*device
	mono
	color
}

var (
	_ MonoDevice  = (*Mono)(nil)
	_ ColorDevice = (*Color)(nil)
	_ MonoDevice  = (*Both)(nil)
	_ ColorDevice = (*Both)(nil)
)

// claimed is the process-wide single-claim guard. The SDK has no instance
// concept, so a second live handle would stomp shared state.
var claimed atomic.Bool

// Option adjusts how a handle is initialized.
type Option func(*settings)

type settings struct {
	api sys.API
}

// WithAPI makes the handle talk to the given SDK surface instead of the
// platform default. This is how a virtual device is wired in.
func WithAPI(api sys.API) Option {
	return func(s *settings) {
		s.api = api
	}
}

// InitMono initializes the SDK for a monochrome device and returns a handle
// exposing the mono operation set.
//
// It panics if another handle is already live in this process; that is a bug
// in the caller, not an operating condition.
func InitMono(appName string, opts ...Option) (*Mono, error) {
	dev, err := initDevice(appName, sys.TypeMono, opts)
	if err != nil {
		return nil, err
	}

	return &Mono{device: dev, mono: mono{dev}}, nil
}

// InitColor initializes the SDK for a color device and returns a handle
// exposing the color operation set.
//
// It panics if another handle is already live in this process.
func InitColor(appName string, opts ...Option) (*Color, error) {
	dev, err := initDevice(appName, sys.TypeColor, opts)
	if err != nil {
		return nil, err
	}

	return &Color{device: dev, color: color{dev}}, nil
}

// InitEither initializes the SDK for whichever device class is present and
// returns a handle exposing both operation sets.
//
// It panics if another handle is already live in this process.
func InitEither(appName string, opts ...Option) (*Both, error) {
	dev, err := initDevice(appName, sys.TypeMono|sys.TypeColor, opts)
	if err != nil {
		return nil, err
	}

	return &Both{device: dev, mono: mono{dev}, color: color{dev}}, nil
}

// device holds the state shared by every handle shape: the SDK surface and
// the class bitmask it was initialized with. The bitmask always matches the
// classes implied by the concrete handle type, because the Init* functions
// are the only constructors.
type device struct {
	api        sys.API
	deviceType uint32
	closeOnce  sync.Once
}

func initDevice(appName string, deviceType uint32, opts []Option) (*device, error) {
	s := settings{api: sys.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	if claimed.Swap(true) {
		panic("lcd: another LCD handle is already live in this process")
	}

	ws, err := encodeWide(appName)
	if err != nil {
		claimed.Store(false)
		return nil, err
	}

	if !s.api.Init(ws, deviceType) {
		claimed.Store(false)
		return nil, ErrInitialization
	}

	if !s.api.IsConnected(deviceType) {
		claimed.Store(false)
		return nil, ErrNotConnected
	}

	return &device{api: s.api, deviceType: deviceType}, nil
}

func (d *device) IsConnected() bool {
	return d.api.IsConnected(d.deviceType)
}

func (d *device) Update() {
	d.api.Update()
}

func (d *device) Close() error {
	d.closeOnce.Do(func() {
		d.api.Shutdown()
		claimed.Store(false)
	})

	return nil
}
