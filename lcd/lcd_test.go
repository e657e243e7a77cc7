package lcd

import (
	"errors"
	"testing"
)

// fakeAPI implements sys.API in-memory, with per-call success switches and a
// record of what crossed the boundary.
type fakeAPI struct {
	initOK            bool
	connectedOK       bool
	monoBackgroundOK  bool
	monoTextOK        bool
	colorBackgroundOK bool
	colorTitleOK      bool
	colorTextOK       bool
	pressed           bool

	initName    []uint16
	initType    uint32
	queriedType uint32
	lastButtons uint32
	lastLine    int
	lastText    []uint16
	lastRGB     [3]int
	lastBytemap []byte
	lastBitmap  []byte

	inits, updates, shutdowns int
	foreignCalls              int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		initOK:            true,
		connectedOK:       true,
		monoBackgroundOK:  true,
		monoTextOK:        true,
		colorBackgroundOK: true,
		colorTitleOK:      true,
		colorTextOK:       true,
	}
}

func (f *fakeAPI) Init(appName []uint16, deviceType uint32) bool {
	f.foreignCalls++
	f.inits++
	f.initName = append([]uint16(nil), appName...)
	f.initType = deviceType
	return f.initOK
}

func (f *fakeAPI) IsConnected(deviceType uint32) bool {
	f.foreignCalls++
	f.queriedType = deviceType
	return f.connectedOK
}

func (f *fakeAPI) IsButtonPressed(buttons uint32) bool {
	f.foreignCalls++
	f.lastButtons = buttons
	return f.pressed
}

func (f *fakeAPI) Update() {
	f.foreignCalls++
	f.updates++
}

func (f *fakeAPI) MonoSetBackground(bytemap []byte) bool {
	f.foreignCalls++
	f.lastBytemap = bytemap
	return f.monoBackgroundOK
}

func (f *fakeAPI) MonoSetText(line int, text []uint16) bool {
	f.foreignCalls++
	f.lastLine = line
	f.lastText = text
	return f.monoTextOK
}

func (f *fakeAPI) ColorSetBackground(bitmap []byte) bool {
	f.foreignCalls++
	f.lastBitmap = bitmap
	return f.colorBackgroundOK
}

func (f *fakeAPI) ColorSetTitle(text []uint16, red, green, blue int) bool {
	f.foreignCalls++
	f.lastText = text
	f.lastRGB = [3]int{red, green, blue}
	return f.colorTitleOK
}

func (f *fakeAPI) ColorSetText(line int, text []uint16, red, green, blue int) bool {
	f.foreignCalls++
	f.lastLine = line
	f.lastText = text
	f.lastRGB = [3]int{red, green, blue}
	return f.colorTextOK
}

func (f *fakeAPI) Shutdown() {
	f.foreignCalls++
	f.shutdowns++
}

func mustPanic(t *testing.T, msg string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic: %s", msg)
		}
	}()

	fn()
}

func TestInitMono(t *testing.T) {
	api := newFakeAPI()

	handle, err := InitMono("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitMono: %v", err)
	}
	defer handle.Close()

	if api.initType != 0x1 {
		t.Errorf("init bitmask = %#x, want %#x", api.initType, 0x1)
	}
	if api.queriedType != api.initType {
		t.Errorf("connectivity check bitmask = %#x, want %#x", api.queriedType, api.initType)
	}
	if handle.device.deviceType != api.initType {
		t.Errorf("handle bitmask = %#x, want %#x", handle.device.deviceType, api.initType)
	}

	want := []uint16{'a', 'p', 'p', 'l', 'e', 't', 0}
	if len(api.initName) != len(want) {
		t.Fatalf("init name length = %d, want %d", len(api.initName), len(want))
	}
	for i := range want {
		if api.initName[i] != want[i] {
			t.Errorf("init name[%d] = %d, want %d", i, api.initName[i], want[i])
		}
	}
}

func TestInitColorBitmask(t *testing.T) {
	api := newFakeAPI()

	handle, err := InitColor("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitColor: %v", err)
	}
	defer handle.Close()

	if api.initType != 0x2 {
		t.Errorf("init bitmask = %#x, want %#x", api.initType, 0x2)
	}
}

func TestInitEitherBitmask(t *testing.T) {
	api := newFakeAPI()

	handle, err := InitEither("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitEither: %v", err)
	}
	defer handle.Close()

	if api.initType != 0x3 {
		t.Errorf("init bitmask = %#x, want %#x", api.initType, 0x3)
	}
}

func TestInitFailureReleasesClaim(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(*fakeAPI)
		want    error
	}{
		{"init call fails", func(f *fakeAPI) { f.initOK = false }, ErrInitialization},
		{"not connected", func(f *fakeAPI) { f.connectedOK = false }, ErrNotConnected},
		{"null in app name", func(f *fakeAPI) {}, ErrNullCharacter},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			api := newFakeAPI()
			c.prepare(api)

			name := "applet"
			if c.want == ErrNullCharacter {
				name = "app\x00let"
			}

			if _, err := InitMono(name, WithAPI(api)); !errors.Is(err, c.want) {
				t.Fatalf("InitMono error = %v, want %v", err, c.want)
			}

			// The claim must be back off: a fresh init attempt has to be
			// allowed to run instead of panicking.
			api = newFakeAPI()
			handle, err := InitMono("applet", WithAPI(api))
			if err != nil {
				t.Fatalf("InitMono after failed init: %v", err)
			}
			handle.Close()
		})
	}
}

func TestNullAppNameSkipsForeignCalls(t *testing.T) {
	api := newFakeAPI()

	if _, err := InitMono("app\x00let", WithAPI(api)); !errors.Is(err, ErrNullCharacter) {
		t.Fatalf("InitMono error = %v, want ErrNullCharacter", err)
	}

	if api.foreignCalls != 0 {
		t.Errorf("foreign calls = %d, want 0", api.foreignCalls)
	}
}

func TestSecondInitPanics(t *testing.T) {
	api := newFakeAPI()

	handle, err := InitMono("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitMono: %v", err)
	}
	defer handle.Close()

	mustPanic(t, "second init while a handle is live", func() {
		InitColor("other", WithAPI(newFakeAPI()))
	})

	// The panicking attempt must not have clobbered the live claim.
	if !claimed.Load() {
		t.Error("claim was released by the failed second init")
	}
}

func TestCloseShutsDownOnce(t *testing.T) {
	api := newFakeAPI()

	handle, err := InitEither("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitEither: %v", err)
	}

	if err := handle.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := handle.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if api.shutdowns != 1 {
		t.Errorf("shutdowns = %d, want 1", api.shutdowns)
	}
	if claimed.Load() {
		t.Error("claim still held after Close")
	}
}

func TestCloseAfterFailedOperations(t *testing.T) {
	api := newFakeAPI()
	api.monoTextOK = false

	handle, err := InitMono("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitMono: %v", err)
	}

	if err := handle.SetMonoText(0, "hi"); !errors.Is(err, ErrMonoText) {
		t.Fatalf("SetMonoText error = %v, want ErrMonoText", err)
	}

	handle.Close()

	if api.shutdowns != 1 {
		t.Errorf("shutdowns = %d, want 1", api.shutdowns)
	}
	if claimed.Load() {
		t.Error("claim still held after Close")
	}
}

func TestConnectedAndUpdatePassThrough(t *testing.T) {
	api := newFakeAPI()

	handle, err := InitMono("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitMono: %v", err)
	}
	defer handle.Close()

	api.connectedOK = false
	if handle.IsConnected() {
		t.Error("IsConnected = true, want false")
	}

	handle.Update()
	handle.Update()
	if api.updates != 2 {
		t.Errorf("updates = %d, want 2", api.updates)
	}
}

// The type assertions below are the runtime face of the compile-time gating:
// a handle's interface satisfaction must exactly match its initialization
// path.
func TestCapabilityInterfaces(t *testing.T) {
	api := newFakeAPI()

	monoHandle, err := InitMono("applet", WithAPI(api))
	if err != nil {
		t.Fatalf("InitMono: %v", err)
	}

	var d Device = monoHandle
	if _, ok := d.(MonoDevice); !ok {
		t.Error("*Mono does not satisfy MonoDevice")
	}
	if _, ok := d.(ColorDevice); ok {
		t.Error("*Mono must not satisfy ColorDevice")
	}
	monoHandle.Close()

	colorHandle, err := InitColor("applet", WithAPI(newFakeAPI()))
	if err != nil {
		t.Fatalf("InitColor: %v", err)
	}

	d = colorHandle
	if _, ok := d.(ColorDevice); !ok {
		t.Error("*Color does not satisfy ColorDevice")
	}
	if _, ok := d.(MonoDevice); ok {
		t.Error("*Color must not satisfy MonoDevice")
	}
	colorHandle.Close()

	bothHandle, err := InitEither("applet", WithAPI(newFakeAPI()))
	if err != nil {
		t.Fatalf("InitEither: %v", err)
	}

	d = bothHandle
	if _, ok := d.(MonoDevice); !ok {
		t.Error("*Both does not satisfy MonoDevice")
	}
	if _, ok := d.(ColorDevice); !ok {
		t.Error("*Both does not satisfy ColorDevice")
	}
	bothHandle.Close()
}
