package runner

// Key is a named key the runner reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyArrowLeft
	KeyA
	KeyArrowRight
	KeyD
	KeySpace
	KeyEnter
)

var keyCodes = map[string]Key{
	"ArrowLeft":  KeyArrowLeft,
	"KeyA":       KeyA,
	"ArrowRight": KeyArrowRight,
	"KeyD":       KeyD,
	"Space":      KeySpace,
	"Enter":      KeyEnter,
}

// KeyFromCode maps a named key code ("ArrowLeft", "KeyA", ...) to a Key.
// Unknown codes map to KeyNone.
func KeyFromCode(code string) Key {
	return keyCodes[code]
}

func (k Key) String() string {
	for code, v := range keyCodes {
		if v == k {
			return code
		}
	}
	return "None"
}

// Latch holds the held-input flags. The loop reads it once per frame.
type Latch struct {
	Left  bool
	Right bool
	Boost bool
}

// set updates the flag bound to k and reports whether k is a latched key.
func (l *Latch) set(k Key, down bool) bool {
	switch k {
	case KeyArrowLeft, KeyA:
		l.Left = down
	case KeyArrowRight, KeyD:
		l.Right = down
	case KeySpace:
		l.Boost = down
	default:
		return false
	}
	return true
}
