package cliui

import (
	"strings"
	"testing"

	"github.com/utoken-go/utoken/internal/resource"
)

func TestFormatErrorIncludesMessage(t *testing.T) {
	out := FormatError(ErrorOptions{Level: LevelError, Message: "bad rule", NoColor: true})
	if !strings.Contains(out, "bad rule") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestFormatLoadErrorIncludesLocation(t *testing.T) {
	err := &resource.LoadError{File: "tok-resource.txt", Line: 12, Column: 1, Rule: "Mr.", Msg: "empty rule"}
	out := FormatLoadError(err, true)
	if !strings.Contains(out, "tok-resource.txt:12:1") {
		t.Errorf("expected file:line:column in output, got %q", out)
	}
	if !strings.Contains(out, "Mr.") {
		t.Errorf("expected rule name in suggestion, got %q", out)
	}
}

func TestFormatLoadWarningIncludesLocation(t *testing.T) {
	w := &resource.LoadWarning{File: "tok-resource.txt", Line: 5, Rule: "Dr.", Msg: "duplicate rule, overwriting prior entry"}
	out := FormatLoadWarning(w, true)
	if !strings.Contains(out, "tok-resource.txt:5") {
		t.Errorf("expected file:line in output, got %q", out)
	}
}

func TestFormatSuccess(t *testing.T) {
	out := FormatSuccess("loaded 3 resource files", true)
	if !strings.Contains(out, "loaded 3 resource files") {
		t.Errorf("expected message in output, got %q", out)
	}
}
