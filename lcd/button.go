package lcd

// Button is a bitset of gamepanel soft buttons. Combine with |. The mono and
// color panels carry distinct button rows, so the two query methods each mask
// their argument down to the subset their panel actually has.
type Button uint32

// Buttons on the monochrome panel.
const (
	MonoButton0 Button = 0x00000001
	MonoButton1 Button = 0x00000002
	MonoButton2 Button = 0x00000004
	MonoButton3 Button = 0x00000008
)

// Buttons on the color panel.
const (
	ColorButtonLeft   Button = 0x00000100
	ColorButtonRight  Button = 0x00000200
	ColorButtonOk     Button = 0x00000400
	ColorButtonCancel Button = 0x00000800
	ColorButtonUp     Button = 0x00001000
	ColorButtonDown   Button = 0x00002000
	ColorButtonMenu   Button = 0x00004000
)

// Masks covering each panel's full button set.
const (
	MonoButtons  = MonoButton0 | MonoButton1 | MonoButton2 | MonoButton3
	ColorButtons = ColorButtonLeft | ColorButtonRight | ColorButtonOk |
		ColorButtonCancel | ColorButtonUp | ColorButtonDown | ColorButtonMenu
)
