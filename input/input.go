// Package input defines the device-independent events consumed by the
// viewport controller. Hosts translate their platform's wheel, pointer
// and keyboard events into these types; the controller never touches a
// windowing API directly.
package input

import "github.com/mkview/mkview/geom"

// DeltaMode distinguishes discrete wheel clicks from continuous
// trackpad-style scrolling. The gesture router treats the two very
// differently: clicks are deliberate single steps, pixel deltas are
// accumulated.
type DeltaMode uint8

const (
	// DeltaPixel carries continuous per-frame pixel deltas.
	DeltaPixel DeltaMode = iota
	// DeltaLine carries one wheel click per event.
	DeltaLine
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModCommand
	ModShift
	ModAlt
)

// Contain reports whether m contains all of want.
func (m Modifiers) Contain(want Modifiers) bool { return m&want == want }

// Shortcut reports whether the platform's primary shortcut modifier is
// held (Command on macOS, Ctrl elsewhere). Either satisfies it so hosts
// need not know which platform they run on.
func (m Modifiers) Shortcut() bool {
	return m&(ModCtrl|ModCommand) != 0
}

// WheelEvent is a scroll or pinch event. A held shortcut modifier turns
// the event into a zoom anchored at Position.
type WheelEvent struct {
	DeltaX, DeltaY float64
	Mode           DeltaMode
	Modifiers      Modifiers
	// Position is the pointer location in viewport pixels.
	Position geom.Point
}

// Discrete reports whether the event carries wheel-click deltas.
func (e WheelEvent) Discrete() bool { return e.Mode == DeltaLine }

// PointerKind is the type of a pointer transition.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// Buttons is a bitmask of pressed pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// Contain reports whether b contains all of want.
func (b Buttons) Contain(want Buttons) bool { return b&want == want }

// PointerEvent is a pointer transition in viewport pixels.
type PointerEvent struct {
	Kind     PointerKind
	Position geom.Point
	Buttons  Buttons
	// OnControl is set by the host when the event targets an interactive
	// overlay control; a press there must click, not start a pan.
	OnControl bool
}

// Key names understood by the shortcut handler. Printable keys are their
// own name.
const (
	KeyLeft  = "Left"
	KeyRight = "Right"
	KeyUp    = "Up"
	KeyDown  = "Down"
	KeyHome  = "Home"
	KeyEnd   = "End"
)

// KeyEvent is a key press.
type KeyEvent struct {
	// Name is one of the Key constants or the key's rune for printable
	// keys ("+", "-", "0", ...).
	Name      string
	Modifiers Modifiers
	// EditorFocus is set by the host while keyboard focus is inside a
	// text-editing surface; the shortcut handler ignores such events.
	EditorFocus bool
}
