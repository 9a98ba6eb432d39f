package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/lmy441900/libutils/core"
)

// TestOutput_GoldenFormat pins the exact byte format of every severity,
// including the confirmation prompt. Run with -update to regenerate.
func TestOutput_GoldenFormat(t *testing.T) {
	var out, errBuf bytes.Buffer
	_ = captureExit(t)
	l := New(Config{Out: &out, Err: &errBuf, In: strings.NewReader("y\n")})

	site := core.CallSite{File: "archive.go", Routine: "Pack", Line: 42}
	l.Output(core.Info, site, "checking %d entries", 3)
	l.Output(core.WarnNoAck, site, "index rebuild pending")
	l.Output(core.WarnAck, site, "overwrite existing archive?")
	l.Output(core.Error, site, "archive corrupt: %s", "trailer missing")

	g := goldie.New(t)
	g.Assert(t, "severities", append(out.Bytes(), errBuf.Bytes()...))
}
