//go:build rp2040

// Firmware entry point for the Raspberry Pi Pico build of the sensor node.
// Everything hardware-specific lives here: pin assignment, bus setup, and
// the thin bindings from machine/driver handles to the node's capability
// interfaces. The core in services/node never imports machine.
package main

import (
	"context"
	"machine"
	"time"

	"sensornode-go/drivers/rfm12"
	"sensornode-go/errcode"
	"sensornode-go/services/node"
	"sensornode-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ds18b20"
	"tinygo.org/x/drivers/onewire"
)

// Board wiring.
const (
	pinEnvRail   = machine.GP2  // AHT20 supply
	pinProbeRail = machine.GP3  // DS18B20 bus supply
	pinOneWire   = machine.GP4  // DS18B20 data
	pinRadioSel  = machine.GP17 // RFM12B nSEL
	pinBattery   = machine.GP26 // ADC0, battery divider
	pinDebugTX   = machine.GP0
	pinDebugRX   = machine.GP1
)

// Node identity and cadence; fixed at build time.
var cfg = types.Config{
	Group:          212,
	NodeID:         22,
	Band:           types.Band868,
	Period:         60 * time.Second,
	ResolutionBits: 11,
	ProbeAddrs: [2]types.ProbeAddr{
		{0x28, 0xFF, 0x4A, 0x5B, 0x86, 0x16, 0x03, 0x1C},
		{0x28, 0xFF, 0x9E, 0x21, 0x87, 0x16, 0x05, 0xE0},
	},
}.Defaulted()

func main() {
	// Let USB/serial settle before anything prints.
	time.Sleep(3 * time.Second)

	debug := uartx.UART0
	_ = debug.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       pinDebugTX,
		RX:       pinDebugRX,
	})

	machine.I2C0.Configure(machine.I2CConfig{})
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 2_000_000,
		Mode:      0,
	})
	machine.InitADC()

	sel := &picoPin{p: pinRadioSel}
	_ = sel.ConfigureOutput(true)
	radio := rfm12.New(machine.SPI0, sel.Set)
	radio.Configure(rfm12.Config{
		Group:  cfg.Group,
		NodeID: cfg.NodeID,
		Band:   radioBand(cfg.Band),
	})

	deps := node.Deps{
		Env:     node.NewAHT20Env(&picoPin{p: pinEnvRail}, machine.I2C0, 0),
		Probes:  newProbeBus(pinProbeRail, pinOneWire),
		Battery: newBatteryADC(pinBattery),
		Radio:   radio,
		LED:     &ledIndicator{p: machine.LED},
		Power:   &picoPower{},
		Console: debug,
	}

	_ = node.Run(context.Background(), cfg, deps)
}

func radioBand(b types.Band) rfm12.Band {
	switch b {
	case types.Band433:
		return rfm12.Band433
	case types.Band915:
		return rfm12.Band915
	default:
		return rfm12.Band868
	}
}

// ---- GPIO binding ----

type picoPin struct {
	p machine.Pin
}

func (g *picoPin) ConfigureOutput(initial bool) error {
	g.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	g.p.Set(initial)
	return nil
}

func (g *picoPin) Set(level bool) { g.p.Set(level) }
func (g *picoPin) Get() bool      { return g.p.Get() }

// ---- One-wire probe bus binding ----

const (
	owWriteScratchpad = 0x4E
	owConvertTemp     = 0x44
)

type owProbeBus struct {
	rail picoPin
	ow   onewire.Device
	ds   ds18b20.Device

	roms       [][]uint8
	enumerated bool
}

func newProbeBus(rail, data machine.Pin) *owProbeBus {
	ow := onewire.New(data)
	b := &owProbeBus{
		rail: picoPin{p: rail},
		ow:   ow,
		ds:   ds18b20.New(ow),
	}
	_ = b.rail.ConfigureOutput(false)
	return b
}

func (b *owProbeBus) PowerOn() {
	b.rail.Set(true)
	b.enumerated = false
}

func (b *owProbeBus) PowerOff() {
	b.rail.Set(false)
}

func (b *owProbeBus) AddressAt(slot int) (types.ProbeAddr, error) {
	if !b.enumerated {
		roms, err := b.ow.Search(onewire.SEARCH_ROM)
		if err != nil {
			return types.ProbeAddr{}, err
		}
		b.roms = roms
		b.enumerated = true
	}
	if slot < 0 || slot >= len(b.roms) || len(b.roms[slot]) != 8 {
		return types.ProbeAddr{}, errcode.SensorAbsent
	}
	var a types.ProbeAddr
	copy(a[:], b.roms[slot])
	return a, nil
}

func (b *owProbeBus) SetResolution(a types.ProbeAddr, bits uint8) error {
	if err := b.ow.Select(a[:]); err != nil {
		return err
	}
	b.ow.Write(owWriteScratchpad)
	b.ow.Write(0x7F) // TH alarm, unused
	b.ow.Write(0x80) // TL alarm, unused
	b.ow.Write((bits-9)<<5 | 0x1F)
	return nil
}

// ConvertAll addresses the whole bus at once; collection happens after the
// resolution-derived wait, per probe.
func (b *owProbeBus) ConvertAll() error {
	if err := b.ow.Reset(); err != nil {
		return err
	}
	b.ow.Write(onewire.SKIP_ROM)
	b.ow.Write(owConvertTemp)
	return nil
}

func (b *owProbeBus) Temperature(a types.ProbeAddr) (int32, error) {
	return b.ds.ReadTemperature(a[:])
}

// ---- Battery ADC binding ----

type batteryADC struct {
	adc machine.ADC
}

func newBatteryADC(pin machine.Pin) *batteryADC {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &batteryADC{adc: adc}
}

// ReadCount returns a 10-bit count; machine.ADC.Get is left-aligned 16-bit.
func (b *batteryADC) ReadCount() uint16 {
	return b.adc.Get() >> 6
}

// ---- Indicator ----

type ledIndicator struct {
	p machine.Pin
}

func (l *ledIndicator) Flash(times int) {
	l.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for i := 0; i < times; i++ {
		l.p.High()
		time.Sleep(150 * time.Millisecond)
		l.p.Low()
		time.Sleep(150 * time.Millisecond)
	}
}

// ---- Power manager ----

type picoPower struct{}

// Sleep is the duty-cycle suspension. The timer wake can leave the ADC
// block unclocked, so analog setup is reinitialised before the next sample.
func (p *picoPower) Sleep(d time.Duration) {
	time.Sleep(d)
	machine.InitADC()
}

// PowerDown parks the node permanently; only a hardware reset recovers it.
func (p *picoPower) PowerDown() {
	for {
		time.Sleep(time.Hour)
	}
}
