package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("permission denied"),
			message: "cannot open",
			wantMsg: "cannot open: permission denied",
		},
		{
			name:    "wrap structured error",
			err:     New("disk full"),
			message: "cannot write",
			wantMsg: "cannot write: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrap_PreservesClassification(t *testing.T) {
	inner := New("disk full").WithCode(CodeWriteFailure).WithDetail("path", "/tmp/x")
	outer := Wrap(inner, "save failed")

	if outer.Code() != CodeWriteFailure {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeWriteFailure)
	}
	if outer.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityMedium)
	}
	if v, ok := outer.Detail("path"); !ok || v != "/tmp/x" {
		t.Errorf("Detail(path) = %v, %v", v, ok)
	}
}

func TestWithCode_DerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeMissingInputFile, SeverityLow},
		{CodeConfigurationFallback, SeverityLow},
		{CodeReadFailure, SeverityMedium},
		{CodeWriteFailure, SeverityMedium},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithCode_KeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeMissingInputFile)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestHasCode_ThroughWrapping(t *testing.T) {
	base := New("missing").WithCode(CodeMissingInputFile)
	wrapped := fmt.Errorf("collect: %w", base)

	if !HasCode(wrapped, CodeMissingInputFile) {
		t.Error("HasCode() should see through fmt.Errorf wrapping")
	}
	if HasCode(errors.New("plain"), CodeMissingInputFile) {
		t.Error("HasCode() should be false for a plain error")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(wrapped) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(wrapped))
	}
}

func TestCode_Category(t *testing.T) {
	tests := map[Code]string{
		CodeMissingInputFile:      "input",
		CodeReadFailure:           "input",
		CodeInvalidInput:          "input",
		CodeWriteFailure:          "output",
		CodeConfigurationFallback: "configuration",
		CodeUnknown:               "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", code, got, want)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestString_And_MarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "write failed").
		WithCode(CodeWriteFailure).
		WithOperation("store.save").
		WithDetail("path", "out/floats.txt")

	s := err.String()
	for _, want := range []string{"Code: WRITE_FAILURE", "Operation: store.save", "path=out/floats.txt", "Cause: boom"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("unmarshal: %v", jerr)
	}
	if decoded["code"] != "WRITE_FAILURE" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "store.save" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}
