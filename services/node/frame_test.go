package node

import (
	"encoding/binary"
	"testing"
)

func TestMarshalFrame_LayoutAndOrder(t *testing.T) {
	p := Payload{}
	p.Battery.DeciV = 20
	p.Humidity.DeciPct = 552
	p.TempInt.DeciC = 213
	p.TempExt[0].DeciC = 198
	p.TempExt[1].DeciC = -410

	frame := p.MarshalFrame(nil)
	if len(frame) != FrameLen {
		t.Fatalf("frame length = %d, want %d", len(frame), FrameLen)
	}

	want := []int16{20, 552, 213, 198, -410}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(frame[2*i:]))
		if got != w {
			t.Errorf("field %d = %d, want %d", i, got, w)
		}
	}
}

func TestMarshalFrame_ReusesBuffer(t *testing.T) {
	var p Payload
	var buf [FrameLen]byte
	frame := p.MarshalFrame(buf[:0])
	if &frame[0] != &buf[0] {
		t.Fatal("frame did not reuse the provided buffer")
	}
}
