package rfm12

import (
	"testing"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.SPI = (*fakeSPI)(nil)

// fakeSPI records every 16-bit command and answers status reads with a
// scripted TX-ready flag.
type fakeSPI struct {
	cmds    []uint16
	txReady bool
}

func (f *fakeSPI) Tx(w, r []byte) error {
	cmd := uint16(w[0])<<8 | uint16(w[1])
	f.cmds = append(f.cmds, cmd)
	r[0], r[1] = 0, 0
	if cmd == cmdStatus && f.txReady {
		r[0] = 0x80
	}
	return nil
}

func (f *fakeSPI) Transfer(b byte) (byte, error) { return 0, nil }

func newTestDevice(f *fakeSPI) *Device {
	d := New(f, func(bool) {})
	d.Configure(Config{Group: 212, NodeID: 22, Band: Band868, SendTimeout: 50 * time.Millisecond})
	f.cmds = nil
	return d
}

func TestConfigureSequence(t *testing.T) {
	f := &fakeSPI{}
	d := New(f, func(bool) {})
	d.Configure(Config{Group: 212, NodeID: 22, Band: Band868})

	if len(f.cmds) == 0 || f.cmds[0] != cmdStatus {
		t.Fatalf("first command = %#04x, want status read", f.cmds[0])
	}
	want := map[uint16]string{
		cmdConfig | band868<<4: "band config",
		cmdSyncGroup | 212:     "group sync",
		cmdSleepMode:           "final sleep",
	}
	for cmd, name := range want {
		found := false
		for _, c := range f.cmds {
			if c == cmd {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing %s command %#04x", name, cmd)
		}
	}
	if f.cmds[len(f.cmds)-1] != cmdSleepMode {
		t.Errorf("last command = %#04x, want sleep", f.cmds[len(f.cmds)-1])
	}
}

func TestSendFrameBytes(t *testing.T) {
	f := &fakeSPI{txReady: true}
	d := newTestDevice(f)

	payload := []byte{0x14, 0x00, 0x28, 0x02, 0xD5, 0x00, 0xC6, 0x00, 0x00, 0x00}
	if err := d.Send(payload); err != nil {
		t.Fatalf("send: %v", err)
	}

	if f.cmds[0] != cmdXmitterOn {
		t.Fatalf("first command = %#04x, want transmitter on", f.cmds[0])
	}
	if f.cmds[len(f.cmds)-1] != cmdIdleMode {
		t.Fatalf("last command = %#04x, want idle", f.cmds[len(f.cmds)-1])
	}

	var sent []byte
	for _, c := range f.cmds {
		if c&0xFF00 == cmdTXWrite {
			sent = append(sent, byte(c))
		}
	}

	crc := crc16Update(0xFFFF, 212)
	crc = crc16Update(crc, 22)
	crc = crc16Update(crc, uint8(len(payload)))
	for _, b := range payload {
		crc = crc16Update(crc, b)
	}

	want := []byte{preambleByte, preambleByte, syncByte, 212, 22, uint8(len(payload))}
	want = append(want, payload...)
	want = append(want, uint8(crc), uint8(crc>>8), trailerByte)

	if len(sent) != len(want) {
		t.Fatalf("sent %d bytes, want %d", len(sent), len(want))
	}
	for i := range want {
		if sent[i] != want[i] {
			t.Fatalf("byte %d = %#02x, want %#02x", i, sent[i], want[i])
		}
	}
}

func TestSendDestinationHeader(t *testing.T) {
	f := &fakeSPI{txReady: true}
	d := New(f, func(bool) {})
	d.Configure(Config{Group: 5, NodeID: 22, Dest: 1, SendTimeout: 50 * time.Millisecond})
	f.cmds = nil

	if err := d.Send([]byte{0x01}); err != nil {
		t.Fatalf("send: %v", err)
	}
	var sent []byte
	for _, c := range f.cmds {
		if c&0xFF00 == cmdTXWrite {
			sent = append(sent, byte(c))
		}
	}
	// Header follows preamble+sync+group.
	if hdr := sent[4]; hdr != 0x41 {
		t.Fatalf("header = %#02x, want DST bit + node 1", hdr)
	}
}

func TestSendTimeout(t *testing.T) {
	f := &fakeSPI{txReady: false}
	d := New(f, func(bool) {})
	d.Configure(Config{Group: 5, NodeID: 22, SendTimeout: 5 * time.Millisecond})

	if err := d.Send([]byte{0x01}); err != ErrTimeout {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}

func TestSendTooLong(t *testing.T) {
	f := &fakeSPI{txReady: true}
	d := newTestDevice(f)
	if err := d.Send(make([]byte, MaxPayload+1)); err != ErrTooLong {
		t.Fatalf("err = %v, want ErrTooLong", err)
	}
}
