// services/node/sequencer.go
package node

import (
	"context"

	"sensornode-go/types"
)

// RunPass executes one acquisition pass in fixed order: external probes,
// onboard sensor, battery. Each rail-powered class is powered down exactly
// once per attempt, read failure or not; absent classes are skipped entirely
// and their rail is never touched.
func RunPass(ctx context.Context, cfg types.Config, inv Inventory, d Deps) RawReadings {
	var raw RawReadings

	if inv.Probes[0].Present || inv.Probes[1].Present {
		raw.ProbeValid, raw.Probe = readProbes(cfg, inv, d)
	}

	if inv.Env {
		d.Env.PowerOn()
		d.Power.Sleep(cfg.EnvWarmup)
		if r, err := d.Env.Read(ctx); err == nil {
			raw.Env = r
			raw.EnvValid = true
		}
		d.Env.PowerOff()
	}

	raw.Battery = d.Battery.ReadCount()
	return raw
}

// readProbes runs the asynchronous conversion protocol: re-apply resolution,
// start conversion on the whole bus, wait the resolution-derived fixed
// duration, then collect each present probe. Requesting up front and
// collecting after a known delay keeps the processor-on time well below a
// blocking per-probe read.
func readProbes(cfg types.Config, inv Inventory, d Deps) (valid [2]bool, milliC [2]int32) {
	d.Probes.PowerOn()
	defer d.Probes.PowerOff()
	d.Power.Sleep(cfg.ProbeSettle)

	// Resolution is volatile on some probes; rewrite it every pass. A probe
	// that stopped answering simply yields no reading at collect time.
	for _, p := range inv.Probes {
		if !p.Present {
			continue
		}
		_ = d.Probes.SetResolution(p.Addr, cfg.ResolutionBits)
	}

	if err := d.Probes.ConvertAll(); err != nil {
		return valid, milliC
	}
	d.Power.Sleep(cfg.ConversionWait())

	for i, p := range inv.Probes {
		if !p.Present {
			continue
		}
		t, err := d.Probes.Temperature(p.Addr)
		if err != nil {
			continue
		}
		milliC[i] = t
		valid[i] = true
	}
	return valid, milliC
}
