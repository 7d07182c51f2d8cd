package platform

import (
	"vmhal-go/ddt"
	"vmhal-go/types"
)

// Platform ids reported via the system-query band.
const (
	PlatformHost int32 = 0
)

// DevBoard is the descriptor table of the reference development board:
// two GPIO LEDs plus an active-low one, an active-low user button, the
// console UART and the system timer.
var DevBoard = ddt.Static{
	{Kind: types.KindLED, Role: types.RoleStatus, Index: 0, Handle: 7},
	{Kind: types.KindLED, Role: types.RoleUser, Index: 0, Handle: 8},
	{Kind: types.KindLED, Role: types.RoleUser, Index: 1, Flags: types.FlagActiveLow, Handle: 10},
	{Kind: types.KindButton, Role: types.RoleUser, Index: 0, Flags: types.FlagActiveLow, Handle: 9},
	{Kind: types.KindUART, Role: types.RoleConsole, Index: 0, Handle: 0},
	{Kind: types.KindTimer, Role: types.RoleStatus, Index: 0, Handle: 0},
}

// ExpanderBoard models LEDs behind an I2C GPIO expander at 0x20: the
// handle is the expander bit, not a GPIO number.
var ExpanderBoard = ddt.Static{
	{Kind: types.KindLED, Role: types.RoleStatus, Index: 0, Handle: 0},
	{Kind: types.KindLED, Role: types.RoleUser, Index: 0, Handle: 1},
	{Kind: types.KindLED, Role: types.RoleUser, Index: 1, Flags: types.FlagActiveLow, Handle: 2},
}

// ExpanderAddr is the conventional PCF8574 base address.
const ExpanderAddr uint16 = 0x20
