package platform

import "vmhal-go/sys/led"

// Both host drivers satisfy the LED capability.
var (
	_ led.Driver = (*SimLEDs)(nil)
	_ led.Driver = (*ExpanderLEDs)(nil)
)
