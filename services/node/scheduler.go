// services/node/scheduler.go
package node

import (
	"context"

	"sensornode-go/errcode"
	"sensornode-go/types"
)

// Run is the duty-cycle entry point: boot-time detection, then an endless
// acquire/encode/transmit/sleep loop. On hardware it returns only through
// the fatal power-down; the context is the host-side exit path for
// simulators and tests.
func Run(ctx context.Context, cfg types.Config, d Deps) error {
	cfg = cfg.Defaulted()

	inv := DetectInventory(ctx, cfg, d)
	if !inv.Any() {
		// A node with nothing to report has no further purpose; signal and
		// stop draining the battery. Requires a hardware reset to exit.
		if d.LED != nil {
			d.LED.Flash(cfg.FlashCount)
		}
		d.Power.PowerDown()
		return errcode.NoSensors
	}

	tx := NewTransmitter(d.Radio)
	var payload Payload

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		raw := RunPass(ctx, cfg, inv, d)
		payload.Encode(cfg, raw)
		tx.Transmit(&payload)
		DumpCycle(d.Console, inv, &payload)

		d.Power.Sleep(cfg.Period)
	}
}
