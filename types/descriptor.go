package types

// ---- Device identity ----

// Kind is the functional category of a device.
type Kind uint8

const (
	KindNone    Kind = 0
	KindLED     Kind = 1
	KindButton  Kind = 2
	KindBuzzer  Kind = 3
	KindTimer   Kind = 4
	KindUART    Kind = 5
	KindI2C     Kind = 6
	KindSPI     Kind = 7
	KindADC     Kind = 8
	KindPWM     Kind = 9
	KindStorage Kind = 10
	KindDisplay Kind = 11
	KindRNG     Kind = 12
)

// Role distinguishes the purpose of devices sharing a kind.
type Role uint8

const (
	RoleNone    Role = 0
	RoleStatus  Role = 1
	RoleUser    Role = 2
	RolePower   Role = 3
	RoleConsole Role = 4
	RoleDebug   Role = 5
)

// Flags is the descriptor flag bitset.
type Flags uint8

const (
	// FlagActiveLow marks inverted signal polarity: logical ON is physical LOW.
	FlagActiveLow Flags = 1 << 0
)

// ---- Descriptor ----

// DescriptorSize is the fixed wire size of one descriptor:
// kind, role, index, flags (one byte each) + 32-bit handle.
const DescriptorSize = 8

// Descriptor identifies one physical device. Descriptors are produced once
// by a platform provider and stay immutable for the process lifetime.
type Descriptor struct {
	Kind   Kind
	Role   Role
	Index  uint8 // 0-based within the kind/role pair
	Flags  Flags
	Handle uint32 // platform-specific (GPIO number, expander bit, ...)
}

// ActiveLow reports whether the device uses inverted polarity.
func (d Descriptor) ActiveLow() bool { return d.Flags&FlagActiveLow != 0 }

// ---- Names ----

var kindNames = map[Kind]string{
	KindNone:    "none",
	KindLED:     "led",
	KindButton:  "button",
	KindBuzzer:  "buzzer",
	KindTimer:   "timer",
	KindUART:    "uart",
	KindI2C:     "i2c",
	KindSPI:     "spi",
	KindADC:     "adc",
	KindPWM:     "pwm",
	KindStorage: "storage",
	KindDisplay: "display",
	KindRNG:     "rng",
}

var roleNames = map[Role]string{
	RoleNone:    "none",
	RoleStatus:  "status",
	RoleUser:    "user",
	RolePower:   "power",
	RoleConsole: "console",
	RoleDebug:   "debug",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// KindByName resolves a symbolic kind name ("led", "button", ...).
func KindByName(name string) (Kind, bool) {
	for k, s := range kindNames {
		if s == name {
			return k, true
		}
	}
	return KindNone, false
}

// RoleByName resolves a symbolic role name ("status", "user", ...).
func RoleByName(name string) (Role, bool) {
	for r, s := range roleNames {
		if s == name {
			return r, true
		}
	}
	return RoleNone, false
}
