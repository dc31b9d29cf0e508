package errors

import (
	"runtime"
	"strconv"
	"strings"
)

const maxStackFrames = 32

// captureStack renders the caller's stack, skipping skip frames above the
// caller of captureStack.
func captureStack(skip int) string {
	pcs := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		b.WriteString(frame.Function)
		b.WriteString("\n\t")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		if !more {
			break
		}
		b.WriteByte('\n')
	}
	return b.String()
}
