// services/node/types.go
package node

import (
	"context"
	"io"
	"time"

	"sensornode-go/types"
)

// EnvReading is one combined sample from the onboard sensor.
type EnvReading struct {
	TempMilliC int32 // milli-°C
	RHDeciPct  int32 // tenths of %RH
}

// EnvSensor is the onboard humidity/temperature sensor behind its power rail.
// Read performs one bounded measurement; the rail must already be on and
// settled. Implementations must NOT spawn goroutines.
type EnvSensor interface {
	PowerOn()
	PowerOff()
	Read(ctx context.Context) (EnvReading, error)
}

// ProbeBus is the shared one-wire bus carrying the external temperature
// probes, behind its power rail. Slot numbering follows bus enumeration
// order, which is NOT guaranteed to be stable across resets.
type ProbeBus interface {
	PowerOn()
	PowerOff()
	// AddressAt returns the ROM address of the device enumerated at slot.
	AddressAt(slot int) (types.ProbeAddr, error)
	// SetResolution applies the conversion resolution (9..12 bits) to one probe.
	SetResolution(addr types.ProbeAddr, bits uint8) error
	// ConvertAll starts a temperature conversion on every probe on the bus
	// and returns without waiting for completion.
	ConvertAll() error
	// Temperature reads the result of the last conversion, in milli-°C.
	Temperature(addr types.ProbeAddr) (int32, error)
}

// BatteryADC samples the battery voltage divider. Instantaneous; no power
// sequencing.
type BatteryADC interface {
	ReadCount() uint16
}

// Radio is the telemetry transmitter. Send returns once the frame went out
// or after the driver's bounded completion wait; there is no acknowledgment.
type Radio interface {
	Wakeup()
	Send(frame []byte) error
	Sleep()
}

// Indicator is the visual fault indicator (typically the activity LED).
type Indicator interface {
	Flash(times int)
}

// PowerManager owns the processor's low-power states. Sleep suspends for
// exactly d and must leave analog sampling configuration as it found it.
// PowerDown enters the irrecoverable deep power-down state; on hardware it
// never returns.
type PowerManager interface {
	Sleep(d time.Duration)
	PowerDown()
}

// GPIOPin is the minimal output pin contract used by sensor rails and radio
// chip select.
type GPIOPin interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
}

// Deps bundles the capability implementations handed to the scheduler.
// Console is optional; nil disables the per-cycle debug dump.
type Deps struct {
	Env     EnvSensor
	Probes  ProbeBus
	Battery BatteryADC
	Radio   Radio
	LED     Indicator
	Power   PowerManager
	Console io.Writer
}

// ProbeSlot is one external probe's boot-time detection outcome.
type ProbeSlot struct {
	Present bool
	Addr    types.ProbeAddr
}

// Inventory holds the boot-time presence flags. Created once by detection,
// never mutated afterwards.
type Inventory struct {
	Env    bool
	Probes [2]ProbeSlot
}

// Any reports whether at least one sensor of any class is present.
func (inv Inventory) Any() bool {
	return inv.Env || inv.Probes[0].Present || inv.Probes[1].Present
}

// RawReadings is the outcome of one acquisition pass. Valid flags are false
// for absent sensors and for failed reads; the encoder never looks at the
// value behind a false flag.
type RawReadings struct {
	EnvValid   bool
	Env        EnvReading
	ProbeValid [2]bool
	Probe      [2]int32 // milli-°C
	Battery    uint16   // raw ADC count, always sampled
}
