package types

import "time"

// ---- Radio band selection ----

type Band uint8

const (
	Band433 Band = iota
	Band868
	Band915
)

// ---- Build-time node configuration ----

// Config is fixed at build time; there is no runtime reconfiguration.
// The zero value is not usable directly, call Defaulted first.
type Config struct {
	// Radio addressing.
	Group  uint8 // network group id (second sync byte on air)
	NodeID uint8 // this node's id, 1..30
	Band   Band

	// Cycle cadence.
	Period time.Duration // full duty cycle period, default 60s

	// External probes. Resolution 9..12 bits; it also determines the
	// asynchronous conversion wait (see ConversionWait).
	ResolutionBits uint8
	ProbeAddrs     [2]ProbeAddr

	// Temperature validity bounds in milli-°C, open interval.
	TempMinMilliC int32
	TempMaxMilliC int32

	// Settle/warm-up timings.
	EnvWarmup   time.Duration // onboard rail power-on to first trustworthy read
	EnvRetry    time.Duration // boot detection recovery delay before the retry
	ProbeSettle time.Duration // probe rail power-on settle

	// Bounded transmit-completion wait.
	SendTimeout time.Duration

	// Fatal-halt indicator flash count.
	FlashCount int
}

// Defaulted returns a copy with zero fields filled in.
func (c Config) Defaulted() Config {
	if c.Period <= 0 {
		c.Period = 60 * time.Second
	}
	if c.ResolutionBits < 9 || c.ResolutionBits > 12 {
		c.ResolutionBits = 11
	}
	if c.TempMinMilliC == 0 {
		c.TempMinMilliC = -40_000
	}
	if c.TempMaxMilliC == 0 {
		c.TempMaxMilliC = 125_000
	}
	if c.EnvWarmup <= 0 {
		c.EnvWarmup = 2000 * time.Millisecond
	}
	if c.EnvRetry <= 0 {
		c.EnvRetry = 1500 * time.Millisecond
	}
	if c.ProbeSettle <= 0 {
		c.ProbeSettle = 50 * time.Millisecond
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = 100 * time.Millisecond
	}
	if c.FlashCount <= 0 {
		c.FlashCount = 5
	}
	return c
}

// ConversionWait is the fixed wait between issuing a probe conversion and
// collecting results: 9/10/11/12 bits => 95/187/375/750 ms.
func (c Config) ConversionWait() time.Duration {
	switch c.ResolutionBits {
	case 9:
		return 95 * time.Millisecond
	case 10:
		return 187 * time.Millisecond
	case 11:
		return 375 * time.Millisecond
	default:
		return 750 * time.Millisecond
	}
}
