// services/node/frame.go
package node

import "encoding/binary"

// FrameLen is the fixed on-air payload size: five little-endian int16 fields.
const FrameLen = 10

// MarshalFrame packs the payload into its wire form, in field order:
// battery, humidity, internal temperature, external temperature 1 and 2.
// Appending fields for further probes extends the frame compatibly.
func (p *Payload) MarshalFrame(buf []byte) []byte {
	if cap(buf) < FrameLen {
		buf = make([]byte, FrameLen)
	}
	buf = buf[:FrameLen]
	binary.LittleEndian.PutUint16(buf[0:], uint16(p.Battery.DeciV))
	binary.LittleEndian.PutUint16(buf[2:], uint16(p.Humidity.DeciPct))
	binary.LittleEndian.PutUint16(buf[4:], uint16(p.TempInt.DeciC))
	binary.LittleEndian.PutUint16(buf[6:], uint16(p.TempExt[0].DeciC))
	binary.LittleEndian.PutUint16(buf[8:], uint16(p.TempExt[1].DeciC))
	return buf
}
