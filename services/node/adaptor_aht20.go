// services/node/adaptor_aht20.go
package node

import (
	"context"

	"sensornode-go/drivers/aht20"

	"tinygo.org/x/drivers"
)

type aht20Env struct {
	rail GPIOPin
	dev  aht20.Device
}

// NewAHT20Env binds the onboard humidity/temperature capability to an AHT20
// behind a switched power rail. The rail pin drives the sensor's supply, so
// the device is (re)initialised on every power-up, not at construction.
func NewAHT20Env(rail GPIOPin, bus drivers.I2C, addr uint16) EnvSensor {
	if addr == 0 {
		addr = aht20.Address
	}
	dev := aht20.New(bus)
	dev.Address = addr
	_ = rail.ConfigureOutput(false)
	return &aht20Env{rail: rail, dev: dev}
}

func (a *aht20Env) PowerOn() {
	a.rail.Set(true)
}

func (a *aht20Env) PowerOff() {
	a.rail.Set(false)
}

func (a *aht20Env) Read(ctx context.Context) (EnvReading, error) {
	// Fresh configure each powered session; the device loses calibration
	// state with its rail.
	a.dev.Configure(aht20.Config{Address: a.dev.Address})

	var s aht20.Sample
	if err := a.dev.Read(&s); err != nil {
		return EnvReading{}, err
	}
	return EnvReading{
		TempMilliC: s.MilliCelsius(),
		RHDeciPct:  s.DeciRelHumidity(),
	}, nil
}
