package via

// Read returns the value at one of the VIA's 16 register addresses
// (already mapped into 0..15 by the bus's shadow mask).
func (v *Via) Read(addr uint16) uint8 {
	switch addr {
	case regPortB:
		result := v.portB
		setBit(&result, portBComparator, int8(v.portA) < v.joystickPot)
		setBit(&result, portBSoundBC1, v.psg.BC1())
		setBit(&result, portBSoundBDir, v.psg.BDIR())
		return result

	case regPortA:
		v.ca1InterruptFlag = false

		result := v.portA
		// Digital input: PSG in "read" mode with BDIR clear surfaces the
		// joystick button mask instead of the latched DAC value.
		if v.portB&portBSoundBDir == 0 && v.portB&portBSoundBC1 != 0 {
			if v.dataDirA == 0 {
				result = v.joystickButtonState
			}
		}
		return result

	case regDataDirB:
		return v.dataDirB
	case regDataDirA:
		return v.dataDirA

	case regTimer1Low:
		return v.timer1.readCounterLow()
	case regTimer1High:
		return v.timer1.readCounterHigh()
	case regTimer1LatchLow:
		return v.timer1.readLatchLow()
	case regTimer1LatchHigh:
		return v.timer1.readLatchHigh()

	case regTimer2Low:
		return v.timer2.readCounterLow()
	case regTimer2High:
		return v.timer2.readCounterHigh()

	case regShift:
		return v.shift.readValue()

	case regAuxCntl:
		// Timer1/Timer2 mode bits always read back as one-shot (the only
		// mode supported); the shift-register field always reads back as
		// shift-out-under-Φ2.
		var auxCntl uint8 = 0b110 << 2
		setBit(&auxCntl, auxPB7Flag, v.timer1.pb7FlagSet())
		return auxCntl

	case regPeriphCntl:
		return v.periphCntl

	case regInterruptFlag:
		return v.interruptFlagValue()

	case regInterruptEnable:
		return v.interruptEnable

	case regPortANoHandshake:
		v.errs.Unsupported("Via.Read", "port A without handshake not implemented")
		return 0
	}
	return 0
}

// Write sets the value at one of the VIA's 16 register addresses.
func (v *Via) Write(addr uint16, value uint8) {
	switch addr {
	case regPortB:
		v.portB = value
		v.updateIntegrators()
		v.updatePsg()

	case regPortA:
		v.ca1InterruptFlag = false
		v.portA = value
		if v.dataDirA == 0xFF {
			v.updateIntegrators()
		}

	case regDataDirB:
		v.dataDirB = value

	case regDataDirA:
		v.dataDirA = value
		if value != 0 && value != 0xFF {
			v.errs.Undefined("Via.Write", "expected data direction for port A to be all 0s or all 1s, got $%02X", value)
		}

	case regTimer1Low:
		v.timer1.writeCounterLow(value)
	case regTimer1High:
		v.timer1.writeCounterHigh(value)
	case regTimer1LatchLow:
		v.timer1.writeLatchLow(value)
	case regTimer1LatchHigh:
		v.timer1.writeLatchHigh(value)

	case regTimer2Low:
		v.timer2.writeCounterLow(value)
	case regTimer2High:
		v.timer2.writeCounterHigh(value)

	case regShift:
		v.shift.setValue(value)

	case regAuxCntl:
		v.writeAuxCntl(value)

	case regPeriphCntl:
		v.writePeriphCntl(value)

	case regInterruptFlag:
		v.writeInterruptFlag(value)

	case regInterruptEnable:
		// Bit 7 = 1 sets the 1-bits in the mask, bit 7 = 0 clears them;
		// bits left 0 in value are untouched either way.
		setBit(&v.interruptEnable, value&0x7F, value&0x80 != 0)

	case regPortANoHandshake:
		v.errs.Unsupported("Via.Write", "port A without handshake not implemented")
	}
}

// updateIntegrators routes the latched PortA (DAC) value to whichever
// MUX target PortB currently selects, and always to the X-axis
// integrator regardless of MUX state.
func (v *Via) updateIntegrators() {
	if v.muxEnabled() {
		switch v.muxSelect() {
		case 0:
			v.screen.SetIntegratorY(int8(v.portA))
		case 1:
			v.screen.SetIntegratorXYOffset(int8(v.portA))
		case 2:
			v.screen.SetBrightness(v.portA)
		case 3:
			v.directSamples.add(float64(int8(v.portA)) / 128)
		}
	}
	v.screen.SetIntegratorX(int8(v.portA))
}

// updatePsg mirrors PortB's BC1/BDIR bits and PortA's data byte onto the
// PSG's register bus whenever the MUX is not claiming PortA.
func (v *Via) updatePsg() {
	if !v.muxEnabled() {
		v.psg.SetBC1(v.portB&portBSoundBC1 != 0)
		v.psg.SetBDIR(v.portB&portBSoundBDir != 0)
		v.psg.WriteDA(v.portA)
	}
}

func (v *Via) writeAuxCntl(value uint8) {
	if value&(0b111<<2) == 0 {
		v.shift.setMode(shiftDisabled)
	} else {
		v.shift.setMode(shiftOutUnderPhi2)
	}

	if value&auxTimer1FreeRunning != 0 {
		v.errs.Unsupported("Via.Write", "timer1 free-running mode not supported, forcing one-shot")
	}
	if value&auxTimer2PulseCounting != 0 {
		v.errs.Unsupported("Via.Write", "timer2 pulse-counting mode not supported, forcing one-shot")
	}

	v.timer1.setPB7Flag(value&auxPB7Flag != 0)
}

func (v *Via) writePeriphCntl(value uint8) {
	ca2 := (value & periphCA2Mask) >> periphCA2Shift
	if ca2 != 0b110 && ca2 != 0b111 {
		v.errs.Undefined("Via.Write", "unexpected CA2 bits in PeriphCntl: %#03b", ca2)
	}
	cb2 := (value & periphCB2Mask) >> periphCB2Shift
	if cb2 != 0b110 && cb2 != 0b111 {
		v.errs.Undefined("Via.Write", "unexpected CB2 bits in PeriphCntl: %#03b", cb2)
	}

	v.periphCntl = value
	if v.shift.getMode() == shiftDisabled {
		v.screen.SetBlankEnabled(periphBlankEnabled(v.periphCntl))
	}
}

func (v *Via) writeInterruptFlag(value uint8) {
	if value&ifCA2 != 0 {
		v.errs.Unsupported("Via.Write", "clearing CA2 interrupt flag not supported")
	}
	if value&ifCB1 != 0 {
		v.errs.Unsupported("Via.Write", "clearing CB1 interrupt flag not supported")
	}
	if value&ifCB2 != 0 {
		v.errs.Unsupported("Via.Write", "clearing CB2 interrupt flag not supported")
	}

	if value&ifCA1 != 0 {
		v.ca1InterruptFlag = false
	}
	if value&ifShift != 0 {
		v.shift.setInterruptFlag(false)
	}
	if value&ifTimer2 != 0 {
		v.timer2.setInterruptFlag(false)
	}
	if value&ifTimer1 != 0 {
		v.timer1.setInterruptFlag(false)
	}
}
