//go:build !rp2040

// nodesim runs the full duty cycle on the host with simulated hardware:
// sensors that drift a little every cycle, a radio that prints each frame,
// and a power manager that compresses the sleep intervals so a 60 s cycle
// plays out in under a second.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"sensornode-go/services/node"
	"sensornode-go/types"
)

// Sleeps are divided by this factor so the cadence stays observable.
const timeScale = 100

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
	fmt.Println("nodesim: boot")

	deps := node.Deps{
		Env:     &simEnv{tempMilliC: 21_300, rhDeciPct: 552},
		Probes:  &simProbeBus{},
		Battery: &simBattery{count: 620},
		Radio:   &simRadio{},
		LED:     &simLED{},
		Power:   &simPower{},
		Console: os.Stdout,
	}

	if err := node.Run(context.Background(), cfg, deps); err != nil {
		fmt.Println("nodesim: run ended:", err)
	}
}

type simEnv struct {
	on         bool
	tempMilliC int32
	rhDeciPct  int32
}

func (s *simEnv) PowerOn()  { s.on = true }
func (s *simEnv) PowerOff() { s.on = false }

func (s *simEnv) Read(ctx context.Context) (node.EnvReading, error) {
	s.tempMilliC += 37 // slow drift upward
	s.rhDeciPct -= 1
	return node.EnvReading{TempMilliC: s.tempMilliC, RHDeciPct: s.rhDeciPct}, nil
}

type simProbeBus struct {
	on     bool
	cycles int32
}

func (s *simProbeBus) PowerOn()  { s.on = true }
func (s *simProbeBus) PowerOff() { s.on = false }

// The simulated bus enumerates probe 2 before probe 1, exercising the
// dual-order address match.
func (s *simProbeBus) AddressAt(slot int) (types.ProbeAddr, error) {
	switch slot {
	case 0:
		return cfg.ProbeAddrs[1], nil
	case 1:
		return cfg.ProbeAddrs[0], nil
	}
	return types.ProbeAddr{}, fmt.Errorf("no device at slot %d", slot)
}

func (s *simProbeBus) SetResolution(types.ProbeAddr, uint8) error { return nil }
func (s *simProbeBus) ConvertAll() error                          { s.cycles++; return nil }

func (s *simProbeBus) Temperature(a types.ProbeAddr) (int32, error) {
	if a == cfg.ProbeAddrs[0] {
		return 19_800 + 53*s.cycles, nil
	}
	// Probe 2 glitches low every fourth cycle; its payload field sticks.
	if s.cycles%4 == 0 {
		return -55_000, nil
	}
	return 4_200 + 11*s.cycles, nil
}

type simBattery struct {
	count uint16
}

func (s *simBattery) ReadCount() uint16 {
	if s.count > 300 {
		s.count-- // slow discharge
	}
	return s.count
}

type simRadio struct {
	awake bool
}

func (s *simRadio) Wakeup() { s.awake = true }

func (s *simRadio) Send(frame []byte) error {
	fmt.Printf("radio: group %d node %d frame %s\n", cfg.Group, cfg.NodeID, hex.EncodeToString(frame))
	return nil
}

func (s *simRadio) Sleep() { s.awake = false }

type simLED struct{}

func (s *simLED) Flash(times int) {
	for i := 0; i < times; i++ {
		fmt.Println("led: flash")
	}
}

type simPower struct{}

func (s *simPower) Sleep(d time.Duration) {
	time.Sleep(d / timeScale)
}

func (s *simPower) PowerDown() {
	fmt.Println("power: deep power-down (reset to recover)")
	os.Exit(1)
}
