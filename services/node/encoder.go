// services/node/encoder.go
package node

import "sensornode-go/types"

// Payload is the telemetry record for one cycle. Field set and order mirror
// the wire frame exactly; see frame.go. One instance lives for the whole
// session and is updated in place, so a field whose reading failed this
// cycle keeps the last validated value (zero before any success).
type Payload struct {
	Battery  types.BatteryValue
	Humidity types.HumidityValue
	TempInt  types.TemperatureValue
	TempExt  [2]types.TemperatureValue
}

// batteryDeciV converts a raw ADC count to tenths of a volt. The scale is
// 33/1023 (10 x 3.3V full scale over a 10-bit count), truncated.
func batteryDeciV(count uint16) int16 {
	return int16(uint32(count) * 33 / 1023)
}

// tempValid applies the open-interval glitch filter: readings at or beyond
// the bounds are discarded.
func tempValid(cfg types.Config, milliC int32) bool {
	return milliC > cfg.TempMinMilliC && milliC < cfg.TempMaxMilliC
}

// Encode folds one pass's raw readings into the payload. Battery is always
// rewritten; temperature and humidity fields are rewritten only when the
// reading is present and passes validation, otherwise left unchanged.
func (p *Payload) Encode(cfg types.Config, raw RawReadings) {
	p.Battery.DeciV = batteryDeciV(raw.Battery)

	if raw.EnvValid {
		p.Humidity.DeciPct = int16(raw.Env.RHDeciPct)
		if tempValid(cfg, raw.Env.TempMilliC) {
			p.TempInt.DeciC = int16(raw.Env.TempMilliC / 100)
		}
	}

	for i := range p.TempExt {
		if raw.ProbeValid[i] && tempValid(cfg, raw.Probe[i]) {
			p.TempExt[i].DeciC = int16(raw.Probe[i] / 100)
		}
	}
}
