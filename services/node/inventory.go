// services/node/inventory.go
package node

import (
	"context"

	"sensornode-go/types"
)

// DetectInventory probes every sensor class once at boot and returns the
// session's immutable presence flags.
//
// Onboard sensor: rail on, warm-up, one read; on failure a shorter recovery
// delay and exactly one retry; rail off regardless of outcome.
//
// External probes: each configured ROM address is matched against the bus at
// two candidate positions, because enumeration order is not guaranteed. A
// single-order lookup can falsely report an available probe as absent.
func DetectInventory(ctx context.Context, cfg types.Config, d Deps) Inventory {
	var inv Inventory

	if d.Env != nil {
		d.Env.PowerOn()
		d.Power.Sleep(cfg.EnvWarmup)
		if _, err := d.Env.Read(ctx); err == nil {
			inv.Env = true
		} else {
			d.Power.Sleep(cfg.EnvRetry)
			if _, err := d.Env.Read(ctx); err == nil {
				inv.Env = true
			}
		}
		d.Env.PowerOff()
	}

	if d.Probes != nil {
		d.Probes.PowerOn()
		d.Power.Sleep(cfg.ProbeSettle)
		for i := range inv.Probes {
			want := cfg.ProbeAddrs[i]
			inv.Probes[i].Addr = want
			if want.IsZero() {
				continue
			}
			for _, slot := range probeSlotOrder(i) {
				got, err := d.Probes.AddressAt(slot)
				if err != nil {
					continue
				}
				if got == want {
					inv.Probes[i].Present = true
					break
				}
			}
		}
		d.Probes.PowerOff()
	}

	return inv
}

// probeSlotOrder returns the candidate bus positions for probe i: its own
// slot first, the complementary slot second.
func probeSlotOrder(i int) [2]int {
	return [2]int{i, 1 - i}
}
