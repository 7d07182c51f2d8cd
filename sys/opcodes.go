package sys

import "vmhal-go/types"

// Operation codes are partitioned into fixed 256-wide bands, one per
// device kind, starting at 0x0100. Handlers must register inside the band
// owned by their kind; band 0x0F00 holds capability and system queries.

// BandWidth is the size of one device-kind band.
const BandWidth = 0x100

// Band boundaries.
const (
	BandLED     uint16 = 0x0100
	BandButton  uint16 = 0x0200
	BandTimer   uint16 = 0x0300
	BandUART    uint16 = 0x0400
	BandI2C     uint16 = 0x0500
	BandSPI     uint16 = 0x0600
	BandADC     uint16 = 0x0700
	BandPWM     uint16 = 0x0800
	BandStorage uint16 = 0x0900
	BandDisplay uint16 = 0x0A00
	BandRNG     uint16 = 0x0B00
	BandCap     uint16 = 0x0F00
)

// LED operations.
const (
	OpLEDOn     uint16 = BandLED + 0x00
	OpLEDOff    uint16 = BandLED + 0x01
	OpLEDToggle uint16 = BandLED + 0x02
	OpLEDSet    uint16 = BandLED + 0x03
	OpLEDGet    uint16 = BandLED + 0x10
)

// Button operations.
const (
	OpButtonRead uint16 = BandButton + 0x00
	OpButtonWait uint16 = BandButton + 0x01
)

// Timer operations.
const (
	OpTimerStart   uint16 = BandTimer + 0x00
	OpTimerStop    uint16 = BandTimer + 0x01
	OpTimerOneshot uint16 = BandTimer + 0x02
	OpTimerRunning uint16 = BandTimer + 0x10
)

// UART operations.
const (
	OpUARTRead      uint16 = BandUART + 0x00
	OpUARTWrite     uint16 = BandUART + 0x01
	OpUARTAvailable uint16 = BandUART + 0x02
)

// I2C operations.
const (
	OpI2CReadReg  uint16 = BandI2C + 0x00
	OpI2CWriteReg uint16 = BandI2C + 0x01
)

// SPI operations.
const (
	OpSPITransfer uint16 = BandSPI + 0x00
)

// ADC operations.
const (
	OpADCRead uint16 = BandADC + 0x00
)

// PWM operations.
const (
	OpPWMSet   uint16 = BandPWM + 0x00
	OpPWMStart uint16 = BandPWM + 0x01
	OpPWMStop  uint16 = BandPWM + 0x02
)

// Storage operations.
const (
	OpStorageRead  uint16 = BandStorage + 0x00
	OpStorageWrite uint16 = BandStorage + 0x01
)

// Display operations.
const (
	OpDisplayPutc  uint16 = BandDisplay + 0x00
	OpDisplayClear uint16 = BandDisplay + 0x01
)

// RNG operations.
const (
	OpRNGRead uint16 = BandRNG + 0x00
)

// Capability and system queries.
const (
	OpCapCount    uint16 = BandCap + 0x00
	OpCapExists   uint16 = BandCap + 0x01
	OpCapFlags    uint16 = BandCap + 0x02
	OpCapHandle   uint16 = BandCap + 0x03
	OpSysVersion  uint16 = BandCap + 0xF0
	OpSysPlatform uint16 = BandCap + 0xF1
)

// Band returns the band base of op.
func Band(op uint16) uint16 { return op &^ (BandWidth - 1) }

var kindBands = map[types.Kind]uint16{
	types.KindLED:     BandLED,
	types.KindButton:  BandButton,
	types.KindTimer:   BandTimer,
	types.KindUART:    BandUART,
	types.KindI2C:     BandI2C,
	types.KindSPI:     BandSPI,
	types.KindADC:     BandADC,
	types.KindPWM:     BandPWM,
	types.KindStorage: BandStorage,
	types.KindDisplay: BandDisplay,
	types.KindRNG:     BandRNG,
}

// BandForKind returns the opcode band owned by a device kind.
// Buzzer has no band assigned yet.
func BandForKind(k types.Kind) (uint16, bool) {
	b, ok := kindBands[k]
	return b, ok
}
