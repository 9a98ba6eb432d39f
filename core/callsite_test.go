package core

import (
	"strings"
	"testing"
)

func TestCapture(t *testing.T) {
	site := Capture(1)

	if !site.Defined {
		t.Fatal("Capture(1) returned an undefined call site")
	}
	if site.File != "callsite_test.go" {
		t.Errorf("Expected base file name callsite_test.go, got %q", site.File)
	}
	if site.Routine != "TestCapture" {
		t.Errorf("Expected routine TestCapture, got %q", site.Routine)
	}
	if site.Line <= 0 {
		t.Errorf("Expected positive line number, got %d", site.Line)
	}
}

func TestCapture_BadSkip(t *testing.T) {
	site := Capture(1000)
	if site.Defined {
		t.Error("Capture with absurd skip reported a defined site")
	}
}

func TestCallSite_String(t *testing.T) {
	site := CallSite{File: "a.c", Routine: "main", Line: 10}
	if got := site.String(); got != "main (a.c:10)" {
		t.Errorf("String() = %q, want %q", got, "main (a.c:10)")
	}

	// Zero value stays printable.
	if got := (CallSite{}).String(); got != "? (?:0)" {
		t.Errorf("Zero value String() = %q, want %q", got, "? (?:0)")
	}
}

func TestBaseRoutine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main.main", "main"},
		{"github.com/lmy441900/libutils/logger.Infof", "Infof"},
		{"github.com/lmy441900/libutils/logger.(*Logger).Infof", "Infof"},
		{"bare", "bare"},
	}

	for _, tt := range tests {
		if got := baseRoutine(tt.in); got != tt.want {
			t.Errorf("baseRoutine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapture_ThroughHelper(t *testing.T) {
	site := helperCapture()
	if site.Routine != "TestCapture_ThroughHelper" {
		t.Errorf("Expected the helper's caller as routine, got %q", site.Routine)
	}
}

// helperCapture mimics a logging wrapper that reports its caller's site.
func helperCapture() CallSite {
	return Capture(2)
}

func TestCallSite_StringContains(t *testing.T) {
	s := Capture(1).String()
	if !strings.Contains(s, "callsite_test.go:") {
		t.Errorf("Expected file:line in %q", s)
	}
}
