package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lmy441900/libutils/core"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// head is the fixed prefix of every line this package writes.
const head = " ** libutils:"

// declinedExitCode is the exit status used when the user declines a
// WarnAck confirmation.
const declinedExitCode = 255

// Config holds the streams a Logger writes to and reads from.
type Config struct {
	// Out receives Info, WarnNoAck, and WarnAck lines plus the
	// confirmation prompt (default: os.Stdout)
	Out io.Writer
	// Err receives Error lines (default: os.Stderr)
	Err io.Writer
	// In is read one byte at a time during confirmation (default: os.Stdin)
	In io.Reader
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
}

// Logger formats printf-style messages tagged with a call site and a
// severity, and routes them by severity. There is no level filtering and
// no per-call state; every call is independent.
type Logger struct {
	out io.Writer
	err io.Writer
	in  *bufio.Reader
}

// New creates a Logger. Zero-value Config fields fall back to the
// standard streams.
func New(cfg Config) *Logger {
	applyDefaults(&cfg)
	return &Logger{
		out: cfg.Out,
		err: cfg.Err,
		in:  bufio.NewReader(cfg.In),
	}
}

// Output writes one message at the given severity with an explicitly
// provided call site. It is the single dispatch point; the convenience
// methods capture the call site and delegate here.
//
// Info and WarnNoAck return after writing. WarnAck blocks on interactive
// confirmation and either returns (accepted) or terminates the process
// with exit code 255 (declined). Error writes to the error stream and
// terminates the process; it never returns to the caller.
func (l *Logger) Output(sev core.Severity, site core.CallSite, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	switch sev {
	case core.Info, core.WarnNoAck:
		fmt.Fprintf(l.out, "%s In %s %s: %s\n", head, site, sev, msg)
	case core.WarnAck:
		fmt.Fprintf(l.out, "%s In %s %s: %s\n", head, site, sev, msg)
		l.confirm()
	case core.Error:
		fmt.Fprintf(l.err, "%s In %s %s: %s\n", head, site, sev, msg)
		osExit(1)
	}
}

// confirm runs the blocking [y/N] loop. Exactly one byte is read per
// iteration; an unrecognized byte re-prompts without draining the rest
// of the line, so every stray character of a longer answer costs one
// extra iteration. This matches the historical behavior of the library.
func (l *Logger) confirm() {
	for {
		fmt.Fprint(l.out, " -> Continue? [y/N]")

		c, err := l.in.ReadByte()
		if err != nil {
			// Input is gone; nobody can answer, so treat it as a decline.
			osExit(declinedExitCode)
			return
		}

		switch c {
		case 'y', 'Y':
			// Accepted. Discard whatever else was buffered on the line.
			_, _ = io.Copy(io.Discard, l.in)
			return
		case 'n', 'N', '\r':
			osExit(declinedExitCode)
			return
		default:
			fmt.Fprint(l.out, "    Please answer [y]es or [N]o.")
		}
	}
}

// Infof logs an informational message, capturing the call site.
func (l *Logger) Infof(format string, args ...any) {
	l.Output(core.Info, core.Capture(2), format, args...)
}

// Warnf logs a warning that does not require acknowledgement.
func (l *Logger) Warnf(format string, args ...any) {
	l.Output(core.WarnNoAck, core.Capture(2), format, args...)
}

// WarnAckf logs a warning and blocks until the user accepts it. If the
// user declines, the process exits with code 255 and this never returns.
func (l *Logger) WarnAckf(format string, args ...any) {
	l.Output(core.WarnAck, core.Capture(2), format, args...)
}

// Errorf logs a fatal error and terminates the process. It never
// returns to the caller.
func (l *Logger) Errorf(format string, args ...any) {
	l.Output(core.Error, core.Capture(2), format, args...)
}
