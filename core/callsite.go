package core

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// CallSite identifies the point a log call was made from. It is captured
// once per call and never stored beyond the formatting of that call.
type CallSite struct {
	File    string
	Routine string
	Line    int
	Defined bool
}

// Capture retrieves the call site skip frames above the caller of Capture
// itself. skip follows runtime.Caller semantics: 1 is the function that
// called Capture, 2 is its caller, and so on.
func Capture(skip int) CallSite {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallSite{}
	}

	var routine string
	if fn := runtime.FuncForPC(pc); fn != nil {
		routine = baseRoutine(fn.Name())
	}

	return CallSite{
		File:    filepath.Base(file),
		Routine: routine,
		Line:    line,
		Defined: true,
	}
}

// baseRoutine strips the package path and receiver from a fully qualified
// function name, e.g. "github.com/x/y.(*T).Do" becomes "Do".
func baseRoutine(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// String formats the call site as "routine (file:line)". Missing parts
// render as "?" so a zero value stays printable.
func (c CallSite) String() string {
	routine := c.Routine
	if routine == "" {
		routine = "?"
	}
	file := c.File
	if file == "" {
		file = "?"
	}
	return routine + " (" + file + ":" + strconv.Itoa(c.Line) + ")"
}
