package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/datafilter/foundation/core/error"
	mdwlog "github.com/msto63/datafilter/foundation/core/log"
	"github.com/msto63/datafilter/internal/filter/aggregate"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func sample() *aggregate.Collections {
	return &aggregate.Collections{
		Integers: []int64{12, 7},
		Floats:   []float64{3.5, 1e10},
		Strings:  []string{"hello", "  spaced  "},
	}
}

func TestResolveTargets(t *testing.T) {
	targets := ResolveTargets("/out", "sample-", ModeAppend)

	if targets.Integers.Path != filepath.Join("/out", "sample-integers.txt") {
		t.Errorf("Integers.Path = %q", targets.Integers.Path)
	}
	if targets.Floats.Path != filepath.Join("/out", "sample-floats.txt") {
		t.Errorf("Floats.Path = %q", targets.Floats.Path)
	}
	if targets.Strings.Mode != ModeAppend {
		t.Errorf("Strings.Mode = %v", targets.Strings.Mode)
	}

	if got := ResolveTargets("", "", ModeOverwrite).Strings.Path; got != "strings.txt" {
		t.Errorf("empty dir path = %q, want strings.txt", got)
	}
}

func TestSave_Overwrite(t *testing.T) {
	dir := t.TempDir()
	targets := ResolveTargets(dir, "", ModeOverwrite)
	if err := os.WriteFile(targets.Integers.Path, []byte("old content\nthat is longer\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if errs := NewWriter(nil).Save(sample(), targets); len(errs) != 0 {
		t.Fatalf("Save() errors = %v", errs)
	}

	tests := map[string]string{
		targets.Integers.Path: "12\n7\n",
		targets.Floats.Path:   "3.5\n1.0E10\n",
		targets.Strings.Path:  "hello\n  spaced  \n",
	}
	for path, want := range tests {
		if got := readFile(t, path); got != want {
			t.Errorf("%s = %q, want %q", filepath.Base(path), got, want)
		}
	}
}

func TestSave_AppendTwice(t *testing.T) {
	dir := t.TempDir()
	targets := ResolveTargets(dir, "run_", ModeAppend)
	w := NewWriter(nil)

	for i := 0; i < 2; i++ {
		if errs := w.Save(sample(), targets); len(errs) != 0 {
			t.Fatalf("Save() #%d errors = %v", i+1, errs)
		}
	}

	if got := readFile(t, targets.Integers.Path); got != "12\n7\n12\n7\n" {
		t.Errorf("integers = %q", got)
	}
	if got := readFile(t, targets.Strings.Path); got != strings.Repeat("hello\n  spaced  \n", 2) {
		t.Errorf("strings = %q", got)
	}
}

func TestSave_EmptyCollectionUntouched(t *testing.T) {
	dir := t.TempDir()
	targets := ResolveTargets(dir, "", ModeOverwrite)

	if err := os.WriteFile(targets.Floats.Path, []byte("1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(targets.Floats.Path, past, past); err != nil {
		t.Fatal(err)
	}

	c := &aggregate.Collections{Integers: []int64{1}}
	if errs := NewWriter(nil).Save(c, targets); len(errs) != 0 {
		t.Fatalf("Save() errors = %v", errs)
	}

	if got := readFile(t, targets.Floats.Path); got != "1.5\n" {
		t.Errorf("floats = %q, want untouched", got)
	}
	info, err := os.Stat(targets.Floats.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(past) {
		t.Errorf("floats mtime changed to %v", info.ModTime())
	}
	if _, err := os.Stat(targets.Strings.Path); !os.IsNotExist(err) {
		t.Errorf("strings.txt should not be created, stat err = %v", err)
	}
}

func TestSave_WriteFailureContinues(t *testing.T) {
	dir := t.TempDir()
	targets := ResolveTargets(dir, "", ModeOverwrite)
	targets.Integers.Path = filepath.Join(dir, "missing", "integers.txt")

	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelWarn, Output: &buf})

	errs := NewWriter(logger).Save(sample(), targets)

	if len(errs) != 1 {
		t.Fatalf("Save() errors = %v, want 1", errs)
	}
	if !mdwerror.HasCode(errs[0], mdwerror.CodeWriteFailure) {
		t.Errorf("error code = %s, want WRITE_FAILURE", mdwerror.GetCode(errs[0]))
	}
	if got := readFile(t, targets.Floats.Path); got != "3.5\n1.0E10\n" {
		t.Errorf("floats = %q", got)
	}
	if !strings.Contains(buf.String(), "WRITE_FAILURE") {
		t.Errorf("expected logged warning, got %q", buf.String())
	}
}

func TestEncode(t *testing.T) {
	if got := Encode(nil); got != "" {
		t.Errorf("Encode(nil) = %q", got)
	}
	if got := Encode([]string{"a", "", "b"}); got != "a\n\nb\n" {
		t.Errorf("Encode() = %q", got)
	}
}
