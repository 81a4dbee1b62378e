// Package rfm12 provides constants for the command words used to operate the
// HopeRF RFM12B FSK transceiver.
package rfm12

const (
	// Power management (0x82xx): er, ebb, et, es, ex, eb, ew, dc bits.
	cmdIdleMode   = 0x820D // crystal + synthesizer on, ready to switch TX on
	cmdSleepMode  = 0x8205 // everything off except the low-battery detector
	cmdXmitterOn  = 0x823D // power amplifier + synthesizer + crystal
	cmdReceiverOn = 0x82DD

	// TX register write; low byte is the data byte to clock out.
	cmdTXWrite = 0xB800

	// Status read. Bit 15 (RGIT) signals the TX register accepts a new byte.
	cmdStatus     = 0x0000
	statusTXReady = 0x8000

	// Configuration setting (0x80xx): EL, EF, band select, 12.0pF.
	cmdConfig = 0x80C7

	// Fixed link parameters, JeeLabs-compatible.
	cmdFrequency  = 0xA640 // center of the selected band
	cmdDataRate   = 0xC606 // ~49.2 kbps
	cmdRXControl  = 0x94A2 // VDI fast, 134 kHz BW, 0 dBm LNA, -91 dBm DRSSI
	cmdDataFilter = 0xC2AC // auto clock recovery, digital filter, DQD 4
	cmdFIFO       = 0xCA83 // FIFO level 8, two-byte sync, FIFO fill on sync
	cmdSyncGroup  = 0xCE00 // low byte is the group id (second sync byte)
	cmdAFC        = 0xC483 // keep offset while VDI high, no limit, enable
	cmdTXControl  = 0x9850 // 90 kHz deviation, max output power
	cmdPLL        = 0xCC77
	cmdWakeupOff  = 0xE000
	cmdLowDutyOff = 0xC800
	cmdLowBattClk = 0xC049 // 1.66 MHz clock out, 3.1V low-battery threshold
)

// Band select values for the configuration command (bits 5:4).
const (
	band433 = 1
	band868 = 2
	band915 = 3
)

// On-air framing.
const (
	preambleByte = 0xAA
	syncByte     = 0x2D
	trailerByte  = 0xAA

	// MaxPayload is the JeeLabs limit for one frame's data bytes.
	MaxPayload = 66
)
