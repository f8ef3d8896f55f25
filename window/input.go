package window

// Key matches sfKeyCode.
type Key int32

const (
	KeyUnknown Key = -1

	KeyA Key = iota - 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyEscape
	KeyLControl
	KeyLShift
	KeyLAlt
	KeyLSystem
	KeyRControl
	KeyRShift
	KeyRAlt
	KeyRSystem
	KeyMenu
	KeyLBracket
	KeyRBracket
	KeySemiColon
	KeyComma
	KeyPeriod
	KeyQuote
	KeySlash
	KeyBackSlash
	KeyTilde
	KeyEqual
	KeyDash
	KeySpace
	KeyReturn
	KeyBackSpace
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyEnd
	KeyHome
	KeyInsert
	KeyDelete
	KeyAdd
	KeySubtract
	KeyMultiply
	KeyDivide
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyPause

	KeyCount
)

// MouseButton matches sfMouseButton.
type MouseButton int32

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseXButton1
	MouseXButton2
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseXButton1:
		return "x1"
	case MouseXButton2:
		return "x2"
	default:
		return "unknown"
	}
}

// JoystickAxis matches sfJoystickAxis.
type JoystickAxis int32

const (
	JoystickX JoystickAxis = iota
	JoystickY
	JoystickZ
	JoystickR
	JoystickU
	JoystickV
	JoystickPovX
	JoystickPovY
)
