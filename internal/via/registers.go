package via

// register names the VIA's 16-byte CPU-visible register file.
const (
	regPortB = iota
	regPortA
	regDataDirB
	regDataDirA
	regTimer1Low
	regTimer1High
	regTimer1LatchLow
	regTimer1LatchHigh
	regTimer2Low
	regTimer2High
	regShift
	regAuxCntl
	regPeriphCntl
	regInterruptFlag
	regInterruptEnable
	regPortANoHandshake
)

// PortB bit layout, as wired on the Vectrex.
const (
	portBMuxDisabled  uint8 = 1 << 0
	portBMuxSelMask   uint8 = 0b0000_0110
	portBMuxSelShift        = 1
	portBSoundBC1     uint8 = 1 << 3
	portBSoundBDir    uint8 = 1 << 4
	portBComparator   uint8 = 1 << 5
	portBRampDisabled uint8 = 1 << 7
)

// AuxCntl bit layout.
const (
	auxTimer2PulseCounting uint8 = 1 << 5
	auxTimer1FreeRunning   uint8 = 1 << 6
	auxPB7Flag             uint8 = 1 << 7
)

// PeriphCntl bit layout: CA2 selects /ZERO, CB2 selects /BLANK. Both are
// 3-bit fields where 0b110/0b111 select the output-low/output-high modes
// this emulator supports; any other value is an undefined configuration.
const (
	periphCA2Mask  uint8 = 0b0000_1110
	periphCA2Shift       = 1
	periphCB2Mask  uint8 = 0b1110_0000
	periphCB2Shift       = 5
)

func periphZeroEnabled(periphCntl uint8) bool {
	return (periphCntl&periphCA2Mask)>>periphCA2Shift == 0b110
}

func periphBlankEnabled(periphCntl uint8) bool {
	return (periphCntl&periphCB2Mask)>>periphCB2Shift == 0b110
}

// InterruptFlag/InterruptEnable share the same bit assignment; IFR bit 7 is
// the derived composite "IRQ asserted" bit rather than an independent flag.
const (
	ifCA2  uint8 = 1 << 0
	ifCA1  uint8 = 1 << 1
	ifShift uint8 = 1 << 2
	ifCB2  uint8 = 1 << 3
	ifCB1  uint8 = 1 << 4
	ifTimer2 uint8 = 1 << 5
	ifTimer1 uint8 = 1 << 6
	ifIrq  uint8 = 1 << 7
)
