// Package rfm12 drives the RFM12B as a send-only telemetry radio using the
// JeeLabs on-air format: two-byte preamble, sync byte 0x2D plus the group id,
// a header byte carrying the node id, length, data, and a CRC-16 over
// everything from the group byte on. A destination of 0 is a broadcast to
// the network's base.
package rfm12

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

var (
	ErrTooLong = errors.New("rfm12: payload too long")
	ErrTimeout = errors.New("rfm12: tx timeout")
)

// PinOutput drives the radio's chip-select line (active low).
type PinOutput func(level bool)

type Band uint8

const (
	Band433 Band = iota
	Band868
	Band915
)

// Config fixes the link identity at initialisation time.
type Config struct {
	Group  uint8
	NodeID uint8 // 1..30; transmitted in the header byte
	Band   Band
	// SendTimeout bounds the whole transmit sequence. Default 100 ms.
	SendTimeout time.Duration
	// Dest is the destination node id; 0 (default) broadcasts.
	Dest uint8
}

// Device is an RFM12B on an SPI bus. All commands are 16-bit transfers.
type Device struct {
	spi drivers.SPI
	sel PinOutput
	cfg Config

	w [2]byte
	r [2]byte
}

// New creates the device handle. The SPI bus must already be configured
// (mode 0, MSB first, <= 2.5 MHz for status polling).
func New(spi drivers.SPI, sel PinOutput) *Device {
	sel(true)
	return &Device{spi: spi, sel: sel}
}

// Configure programs the link parameters and leaves the radio in sleep mode.
func (d *Device) Configure(cfg Config) {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 100 * time.Millisecond
	}
	d.cfg = cfg

	var band uint16
	switch cfg.Band {
	case Band868:
		band = band868
	case Band915:
		band = band915
	default:
		band = band433
	}

	d.xfer(cmdStatus) // clear any pending power-on reset flag
	d.xfer(cmdConfig | band<<4)
	d.xfer(cmdFrequency)
	d.xfer(cmdDataRate)
	d.xfer(cmdRXControl)
	d.xfer(cmdDataFilter)
	d.xfer(cmdFIFO)
	d.xfer(cmdSyncGroup | uint16(cfg.Group))
	d.xfer(cmdAFC)
	d.xfer(cmdTXControl)
	d.xfer(cmdPLL)
	d.xfer(cmdWakeupOff)
	d.xfer(cmdLowDutyOff)
	d.xfer(cmdLowBattClk)
	d.xfer(cmdSleepMode)
}

// Wakeup brings the radio out of sleep into idle, ready to transmit.
func (d *Device) Wakeup() {
	d.xfer(cmdIdleMode)
}

// Sleep powers the radio down to its lowest state between cycles.
func (d *Device) Sleep() {
	d.xfer(cmdSleepMode)
}

// Send transmits one frame and returns when the last byte has been clocked
// out or the bounded wait elapses. No acknowledgment is awaited.
func (d *Device) Send(payload []byte) error {
	if len(payload) > MaxPayload {
		return ErrTooLong
	}

	hdr := d.cfg.NodeID & 0x1F
	if d.cfg.Dest != 0 {
		hdr = 0x40 | (d.cfg.Dest & 0x1F) // DST bit: header carries destination
	}

	crc := crc16Update(0xFFFF, d.cfg.Group)
	crc = crc16Update(crc, hdr)
	crc = crc16Update(crc, uint8(len(payload)))
	for _, b := range payload {
		crc = crc16Update(crc, b)
	}

	deadline := time.Now().Add(d.cfg.SendTimeout)

	d.xfer(cmdXmitterOn)
	defer d.xfer(cmdIdleMode)

	if err := d.txByte(preambleByte, deadline); err != nil {
		return err
	}
	if err := d.txByte(preambleByte, deadline); err != nil {
		return err
	}
	if err := d.txByte(syncByte, deadline); err != nil {
		return err
	}
	if err := d.txByte(d.cfg.Group, deadline); err != nil {
		return err
	}
	if err := d.txByte(hdr, deadline); err != nil {
		return err
	}
	if err := d.txByte(uint8(len(payload)), deadline); err != nil {
		return err
	}
	for _, b := range payload {
		if err := d.txByte(b, deadline); err != nil {
			return err
		}
	}
	if err := d.txByte(uint8(crc), deadline); err != nil {
		return err
	}
	if err := d.txByte(uint8(crc>>8), deadline); err != nil {
		return err
	}
	// One dummy byte so the PA stays up while the CRC leaves the shift register.
	return d.txByte(trailerByte, deadline)
}

// txByte waits for the TX register to accept a byte, then writes it.
func (d *Device) txByte(b uint8, deadline time.Time) error {
	for d.xfer(cmdStatus)&statusTXReady == 0 {
		if time.Now().After(deadline) {
			return ErrTimeout
		}
	}
	d.xfer(cmdTXWrite | uint16(b))
	return nil
}

// xfer clocks one 16-bit command out and returns the status word read back.
func (d *Device) xfer(cmd uint16) uint16 {
	d.w[0] = byte(cmd >> 8)
	d.w[1] = byte(cmd)
	d.sel(false)
	_ = d.spi.Tx(d.w[:], d.r[:])
	d.sel(true)
	return uint16(d.r[0])<<8 | uint16(d.r[1])
}

// crc16Update is the avr-libc CRC-16 (poly 0xA001) the JeeLabs format uses.
func crc16Update(crc uint16, b uint8) uint16 {
	crc ^= uint16(b)
	for i := 0; i < 8; i++ {
		if crc&1 != 0 {
			crc = (crc >> 1) ^ 0xA001
		} else {
			crc >>= 1
		}
	}
	return crc
}
