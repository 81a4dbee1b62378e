package types

// ---- Sensor classes ----

type Kind string

const (
	KindTemperature Kind = "temperature"
	KindHumidity    Kind = "humidity"
	KindBattery     Kind = "battery"
)

// ProbeAddr is the 64-bit ROM address of an external one-wire probe.
type ProbeAddr [8]byte

// IsZero reports whether the address is unset.
func (a ProbeAddr) IsZero() bool {
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}

// ---- Telemetry value payloads ----
// Fixed-point, small types to suit TinyGo; no floats on the wire.

type TemperatureValue struct {
	// Tenths of °C (e.g. 213 => 21.3°C).
	DeciC int16
}

type HumidityValue struct {
	// Tenths of %RH (e.g. 552 => 55.2 %RH).
	DeciPct int16
}

type BatteryValue struct {
	// Tenths of a volt (e.g. 20 => 2.0 V).
	DeciV int16
}
