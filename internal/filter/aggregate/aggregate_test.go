package aggregate

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/datafilter/foundation/core/error"
	mdwlog "github.com/msto63/datafilter/foundation/core/log"
	"github.com/msto63/datafilter/internal/filter/classify"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func equalInts(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCollect_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "in.txt", "12\n3.5\nhello\n7 world\n")

	c, errs := New(Config{}).Collect([]string{path})

	if len(errs) != 0 {
		t.Fatalf("Collect() errors = %v", errs)
	}
	if !equalInts(c.Integers, []int64{12, 7}) {
		t.Errorf("Integers = %v, want [12 7]", c.Integers)
	}
	if len(c.Floats) != 1 || c.Floats[0] != 3.5 {
		t.Errorf("Floats = %v, want [3.5]", c.Floats)
	}
	if len(c.Strings) != 1 || c.Strings[0] != "hello" {
		t.Errorf("Strings = %q, want [hello]", c.Strings)
	}
}

func TestCollect_OrderAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeInput(t, dir, "a.txt", "1\nx\n2")
	second := writeInput(t, dir, "b.txt", "3\r\ny\r\n")

	c, errs := New(Config{}).Collect([]string{first, second})

	if len(errs) != 0 {
		t.Fatalf("Collect() errors = %v", errs)
	}
	if !equalInts(c.Integers, []int64{1, 2, 3}) {
		t.Errorf("Integers = %v, want [1 2 3]", c.Integers)
	}
	if strings.Join(c.Strings, ",") != "x,y" {
		t.Errorf("Strings = %q, want [x y]", c.Strings)
	}
}

func TestCollect_EveryLineCountedOnce(t *testing.T) {
	dir := t.TempDir()
	content := "1\n\n2.5\n   \nword\n-4 rest\nNaN\n1,5\n"
	path := writeInput(t, dir, "mixed.txt", content)

	c, _ := New(Config{}).Collect([]string{path})

	if got, want := c.Len(), strings.Count(content, "\n"); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if len(c.Strings) != 4 || c.Strings[0] != "" || c.Strings[1] != "" {
		t.Errorf("Strings = %q", c.Strings)
	}
}

func TestCollect_MissingFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.txt", "5\n")
	missing := filepath.Join(dir, "missing.txt")

	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelInfo, Format: mdwlog.FormatText, Output: &buf})

	c, errs := New(Config{Logger: logger}).Collect([]string{missing, good, dir})

	if len(errs) != 2 {
		t.Fatalf("Collect() errors = %v, want 2", errs)
	}
	for _, err := range errs {
		if !mdwerror.HasCode(err, mdwerror.CodeMissingInputFile) {
			t.Errorf("error %v has code %s, want MISSING_INPUT_FILE", err, mdwerror.GetCode(err))
		}
	}
	if !equalInts(c.Integers, []int64{5}) {
		t.Errorf("Integers = %v, want [5]", c.Integers)
	}

	out := buf.String()
	if !strings.Contains(out, "File "+missing+" doesn't exist.") {
		t.Errorf("log output missing warning, got:\n%s", out)
	}
	if !strings.Contains(out, "Filtering "+good+"...") {
		t.Errorf("log output missing progress message, got:\n%s", out)
	}
}

func TestCollect_Stdin(t *testing.T) {
	a := New(Config{Stdin: strings.NewReader("4\nfour\n")})

	c, errs := a.Collect([]string{StdinPath})

	if len(errs) != 0 {
		t.Fatalf("Collect() errors = %v", errs)
	}
	if !equalInts(c.Integers, []int64{4}) || len(c.Strings) != 1 {
		t.Errorf("collections = %+v", c)
	}
}

func TestCollect_CarriageReturnBreaks(t *testing.T) {
	a := New(Config{Stdin: strings.NewReader("7 world\n1\r2\rhello\n")})

	c, errs := a.Collect([]string{StdinPath})

	if len(errs) != 0 {
		t.Fatalf("Collect() errors = %v", errs)
	}
	if !equalInts(c.Integers, []int64{7, 1, 2}) {
		t.Errorf("Integers = %v, want [7 1 2]", c.Integers)
	}
	if len(c.Strings) != 1 || c.Strings[0] != "hello" {
		t.Errorf("Strings = %q, want [hello]", c.Strings)
	}
}

func TestCollect_WholeLinePolicy(t *testing.T) {
	a := New(Config{Policy: classify.PolicyWholeLine, Stdin: strings.NewReader("7 world\n8\n")})

	c, _ := a.Collect([]string{StdinPath})

	if !equalInts(c.Integers, []int64{8}) {
		t.Errorf("Integers = %v, want [8]", c.Integers)
	}
	if len(c.Strings) != 1 || c.Strings[0] != "7 world" {
		t.Errorf("Strings = %q, want [7 world]", c.Strings)
	}
}

type brokenReader struct {
	sent bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errors.New("disk vanished")
	}
	r.sent = true
	return copy(p, "1\n2\n"), nil
}

func TestCollectReader_ReadFailureKeepsValues(t *testing.T) {
	c := NewCollections()
	c.Add(classify.IntegerValue(0))

	err := New(Config{}).CollectReader("broken", &brokenReader{}, c)

	if !mdwerror.HasCode(err, mdwerror.CodeReadFailure) {
		t.Fatalf("CollectReader() error = %v, want READ_FAILURE", err)
	}
	if !equalInts(c.Integers, []int64{0, 1, 2}) {
		t.Errorf("Integers = %v, want [0 1 2]", c.Integers)
	}
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatal("expected *mdwerror.Error")
	}
	if kept, _ := mdwErr.Detail("values_kept"); kept != 2 {
		t.Errorf("values_kept = %v, want 2", kept)
	}
}
