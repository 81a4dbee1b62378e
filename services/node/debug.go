// services/node/debug.go
package node

import (
	"io"

	"sensornode-go/x/conv"
)

// DumpCycle writes one human-readable line per cycle to the debug console,
// in physical units. Absent sensors print as "not present". No-op when no
// console is attached.
func DumpCycle(w io.Writer, inv Inventory, p *Payload) {
	if w == nil {
		return
	}
	var line [96]byte
	b := line[:0]

	b = append(b, "batt "...)
	b = conv.AppendDeci(b, int64(p.Battery.DeciV))
	b = append(b, " V"...)

	for i := range p.TempExt {
		b = append(b, "  ext"...)
		b = append(b, byte('1'+i))
		b = append(b, ' ')
		if inv.Probes[i].Present {
			b = conv.AppendDeci(b, int64(p.TempExt[i].DeciC))
			b = append(b, " C"...)
		} else {
			b = append(b, "not present"...)
		}
	}

	b = append(b, "  int "...)
	if inv.Env {
		b = conv.AppendDeci(b, int64(p.TempInt.DeciC))
		b = append(b, " C "...)
		b = conv.AppendDeci(b, int64(p.Humidity.DeciPct))
		b = append(b, " %"...)
	} else {
		b = append(b, "not present"...)
	}

	b = append(b, '\n')
	_, _ = w.Write(b)
}
