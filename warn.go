package freqresp

import (
	"fmt"
	"io"
	"os"
)

// warnw receives diagnostic notices, such as frequency grid
// reconciliation messages. Reconcilable grid mismatches are not errors;
// they proceed with interpolation-based resampling after notifying the
// caller here.
var warnw io.Writer = os.Stderr

// SetWarnWriter redirects diagnostic notices to w. Passing nil discards
// them. Swapping the writer while other goroutines operate on models is
// not synchronized.
func SetWarnWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	warnw = w
}

func warnf(format string, args ...any) {
	fmt.Fprintf(warnw, "freqresp: "+format+"\n", args...)
}
