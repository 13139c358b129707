package freqresp

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// String renders a tabular magnitude/phase listing of the stored samples,
// sorted by ascending frequency. MIMO models print one table per
// input/output pair.
func (f *FRD) String() string {
	var b strings.Builder
	b.WriteString("frequency response data\n")

	mimo := !f.SISO()
	for j := 0; j < f.ins; j++ {
		for i := 0; i < f.outs; i++ {
			if mimo {
				fmt.Fprintf(&b, "\nInput %d to output %d:\n", j+1, i+1)
			}
			b.WriteString("Freq [rad/s]    Magnitude  Phase [rad]\n")
			b.WriteString("------------  -----------  -----------\n")
			for k, w := range f.omega {
				h := f.resp.At(i, j, k)
				fmt.Fprintf(&b, "%12.3f  %11.4g  %11.4f\n", w, cmplx.Abs(h), cmplx.Phase(h))
			}
		}
	}
	return b.String()
}
