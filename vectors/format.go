package vectors

import (
	"fmt"
	"io"
	"strings"
)

// Line frames the blocks written by Format and Fprint.
const Line = "------------------------------------------------------------------"

// maxPrintedAxes bounds the number of components Fprint writes.
const maxPrintedAxes = 24

// Format renders v as a framed block for display or logging: a title line,
// then one component per line using format (default "%10.4f").
func Format(v Vector, title, format string) string {
	sb := &strings.Builder{}
	sb.WriteString(Line + "\n")
	sb.WriteString(title + "\n")
	fmtStr := "%10.4f"
	if format != "" {
		fmtStr = format
	}
	for _, val := range v.Values() {
		fmt.Fprintf(sb, fmtStr+"\n", val)
	}
	sb.WriteString(Line)
	return sb.String()
}

// Fprint writes a trimmed, indexed view of v to w for debugging.
//
// When debug is true, output is colored (ANSI) to visually distinguish debug
// vectors.
func Fprint(w io.Writer, v Vector, title string, debug bool) {
	if debug {
		fmt.Fprint(w, "\033[33m")
	}
	fmt.Fprintln(w, Line)
	fmt.Fprintf(w, "%s (%d)\n", title, v.Size())
	n := v.Size()
	if n > maxPrintedAxes {
		n = maxPrintedAxes
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "[%03d] %10.4f\n", i, v.AxisOrZero(Axis(i)))
	}
	if v.Size() > n {
		fmt.Fprintln(w, "...")
	}
	fmt.Fprintln(w, Line)
	if debug {
		fmt.Fprint(w, "\033[0m")
	}
}
