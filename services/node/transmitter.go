// services/node/transmitter.go
package node

// Transmit wakes the radio, sends the payload frame and puts the radio back
// to sleep. Fire-and-forget: a send error or timeout is swallowed, the next
// cycle's transmission is unaffected and a lost frame self-corrects.
// The frame buffer is reused across cycles to avoid per-cycle allocation.
type Transmitter struct {
	radio Radio
	buf   [FrameLen]byte
}

func NewTransmitter(r Radio) *Transmitter {
	return &Transmitter{radio: r}
}

func (t *Transmitter) Transmit(p *Payload) {
	frame := p.MarshalFrame(t.buf[:0])
	t.radio.Wakeup()
	_ = t.radio.Send(frame)
	t.radio.Sleep()
}
