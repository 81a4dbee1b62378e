package node

import (
	"context"
	"errors"
	"time"

	"sensornode-go/types"
)

// Interface checks.
var (
	_ EnvSensor    = (*fakeEnv)(nil)
	_ ProbeBus     = (*fakeProbeBus)(nil)
	_ BatteryADC   = (*fakeBattery)(nil)
	_ Radio        = (*fakeRadio)(nil)
	_ Indicator    = (*fakeLED)(nil)
	_ PowerManager = (*fakePower)(nil)
)

var errFakeRead = errors.New("fake read failure")

func addr(b byte) types.ProbeAddr {
	return types.ProbeAddr{0x28, b, 0, 0, 0, 0, 0, b ^ 0x5A}
}

type fakeEnv struct {
	onCount  int
	offCount int
	on       bool
	reading  EnvReading
	errs     []error // shifted per Read; nil entry (or exhausted) = success
	failAll  bool
	reads    int
}

func (f *fakeEnv) PowerOn()  { f.on = true; f.onCount++ }
func (f *fakeEnv) PowerOff() { f.on = false; f.offCount++ }

func (f *fakeEnv) Read(ctx context.Context) (EnvReading, error) {
	f.reads++
	if f.failAll {
		return EnvReading{}, errFakeRead
	}
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return EnvReading{}, err
		}
	}
	return f.reading, nil
}

type fakeProbeBus struct {
	onCount    int
	offCount   int
	on         bool
	slots      []types.ProbeAddr // bus enumeration order
	temps      map[types.ProbeAddr]int32
	tempErr    map[types.ProbeAddr]error
	convertErr error

	converts    int
	addrCalls   []int
	resolutions []uint8
	tempCalls   int
}

func (f *fakeProbeBus) PowerOn()  { f.on = true; f.onCount++ }
func (f *fakeProbeBus) PowerOff() { f.on = false; f.offCount++ }

func (f *fakeProbeBus) AddressAt(slot int) (types.ProbeAddr, error) {
	f.addrCalls = append(f.addrCalls, slot)
	if slot < 0 || slot >= len(f.slots) {
		return types.ProbeAddr{}, errFakeRead
	}
	return f.slots[slot], nil
}

func (f *fakeProbeBus) SetResolution(a types.ProbeAddr, bits uint8) error {
	f.resolutions = append(f.resolutions, bits)
	return nil
}

func (f *fakeProbeBus) ConvertAll() error {
	f.converts++
	return f.convertErr
}

func (f *fakeProbeBus) Temperature(a types.ProbeAddr) (int32, error) {
	f.tempCalls++
	if err, ok := f.tempErr[a]; ok && err != nil {
		return 0, err
	}
	t, ok := f.temps[a]
	if !ok {
		return 0, errFakeRead
	}
	return t, nil
}

type fakeBattery struct {
	count uint16
	reads int
}

func (f *fakeBattery) ReadCount() uint16 {
	f.reads++
	return f.count
}

type fakeRadio struct {
	events  []string
	frames  [][]byte
	sendErr error
}

func (f *fakeRadio) Wakeup() { f.events = append(f.events, "wakeup") }

func (f *fakeRadio) Send(frame []byte) error {
	f.events = append(f.events, "send")
	cp := make([]byte, len(frame))
	copy(cp, frame)
	f.frames = append(f.frames, cp)
	return f.sendErr
}

func (f *fakeRadio) Sleep() { f.events = append(f.events, "sleep") }

type fakeLED struct {
	flashes []int
}

func (f *fakeLED) Flash(times int) { f.flashes = append(f.flashes, times) }

// fakePower records every sleep; afterSleep (if set) runs after each call,
// which tests use to cancel the run context after N cycles.
type fakePower struct {
	sleeps     []time.Duration
	downs      int
	afterSleep func(n int)
}

func (f *fakePower) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
	if f.afterSleep != nil {
		f.afterSleep(len(f.sleeps))
	}
}

func (f *fakePower) PowerDown() { f.downs++ }

// sleptFor reports whether any recorded sleep equals d.
func (f *fakePower) sleptFor(d time.Duration) bool {
	for _, s := range f.sleeps {
		if s == d {
			return true
		}
	}
	return false
}

type fakePin struct {
	level      bool
	configured bool
	sets       int
}

func (f *fakePin) ConfigureOutput(initial bool) error {
	f.configured = true
	f.level = initial
	return nil
}

func (f *fakePin) Set(level bool) { f.level = level; f.sets++ }
func (f *fakePin) Get() bool      { return f.level }

// testDeps returns a full set of fakes with every sensor present and sane
// readings: battery 620, env 21.3°C/55.2%, probe1 19.8°C, probe2 -41.0°C.
func testDeps() (Deps, *fakeEnv, *fakeProbeBus, *fakeBattery, *fakeRadio, *fakeLED, *fakePower) {
	env := &fakeEnv{reading: EnvReading{TempMilliC: 21_300, RHDeciPct: 552}}
	probes := &fakeProbeBus{
		slots: []types.ProbeAddr{addr(1), addr(2)},
		temps: map[types.ProbeAddr]int32{
			addr(1): 19_800,
			addr(2): -41_000,
		},
	}
	bat := &fakeBattery{count: 620}
	radio := &fakeRadio{}
	led := &fakeLED{}
	pwr := &fakePower{}
	d := Deps{Env: env, Probes: probes, Battery: bat, Radio: radio, LED: led, Power: pwr}
	return d, env, probes, bat, radio, led, pwr
}

func testConfig() types.Config {
	return types.Config{
		Group:          212,
		NodeID:         22,
		Band:           types.Band868,
		ResolutionBits: 11,
		ProbeAddrs:     [2]types.ProbeAddr{addr(1), addr(2)},
	}.Defaulted()
}
