package lcd

import "errors"

// The binding maps every failed foreign call to the single most specific
// sentinel for that call. No further detail is available to forward: the SDK
// reports failure as a bare false. Match with errors.Is.
var (
	// ErrNotConnected means no device matching the requested class was
	// attached when the connectivity check ran.
	ErrNotConnected = errors.New("lcd: no matching LCD device is connected")

	// ErrInitialization means the call to LogiLcdInit failed.
	ErrInitialization = errors.New("lcd: call to LogiLcdInit failed")

	// ErrMonoBackground means the call to LogiLcdMonoSetBackground failed.
	ErrMonoBackground = errors.New("lcd: call to LogiLcdMonoSetBackground failed")

	// ErrMonoText means the call to LogiLcdMonoSetText failed.
	ErrMonoText = errors.New("lcd: call to LogiLcdMonoSetText failed")

	// ErrColorBackground means the call to LogiLcdColorSetBackground failed.
	ErrColorBackground = errors.New("lcd: call to LogiLcdColorSetBackground failed")

	// ErrColorTitle means the call to LogiLcdColorSetTitle failed.
	ErrColorTitle = errors.New("lcd: call to LogiLcdColorSetTitle failed")

	// ErrColorText means the call to LogiLcdColorSetText failed.
	ErrColorText = errors.New("lcd: call to LogiLcdColorSetText failed")

	// ErrNullCharacter means a display string contained an embedded NUL code
	// point, which would silently truncate in the SDK's null-terminated wire
	// format. The string is rejected before crossing the boundary.
	ErrNullCharacter = errors.New("lcd: text contains an embedded NUL character")
)
