package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFind(t *testing.T) {
	path := writeFile(t, "hello world\nsay hello")
	var out, errs bytes.Buffer
	if code := run([]string{"hello", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d: %s", code, errs.String())
	}
	want := path + ":1:1: hello world\n" + path + ":2:5: say hello\n"
	if out.String() != want {
		t.Errorf("expected\n%q\nhave\n%q", want, out.String())
	}
	out.Reset()
	if code := run([]string{"-last", "-limit", "1", "hello", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if out.String() != path+":2:5: say hello\n" {
		t.Errorf("expected last match only, have %q", out.String())
	}
	out.Reset()
	if code := run([]string{"-regexp", `w\w+`, path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if out.String() != path+":1:7: hello world\n" {
		t.Errorf("expected regexp match, have %q", out.String())
	}
}

func TestNoMatch(t *testing.T) {
	path := writeFile(t, "hello")
	var out, errs bytes.Buffer
	if code := run([]string{"bye", path}, &out, &errs); code != 1 {
		t.Errorf("expected exit code 1, have %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, have %q", out.String())
	}
}

func TestReplace(t *testing.T) {
	path := writeFile(t, "hello world\nsay hello")
	var out, errs bytes.Buffer
	if code := run([]string{"-r", "bye", "hello", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d: %s", code, errs.String())
	}
	if out.String() != "bye world\nsay bye" {
		t.Errorf("unexpected output %q", out.String())
	}
	out.Reset()
	if code := run([]string{"-r", "", "-limit", "1", "hello ", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if out.String() != "world\nsay hello" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestHTMLOutput(t *testing.T) {
	path := writeFile(t, "a<b")
	var out, errs bytes.Buffer
	if code := run([]string{"-html", "b", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	want := "<pre class=\"u16find\">a&lt;<mark id=\"m1\">b</mark></pre>\n"
	if out.String() != want {
		t.Errorf("expected %q, have %q", want, out.String())
	}
}

func TestUsageErrors(t *testing.T) {
	var out, errs bytes.Buffer
	if code := run([]string{"pattern"}, &out, &errs); code != 2 {
		t.Errorf("expected exit code 2 for missing file, have %d", code)
	}
	if code := run([]string{"x", filepath.Join(t.TempDir(), "missing")}, &out, &errs); code != 2 {
		t.Errorf("expected exit code 2 for unreadable file, have %d", code)
	}
	if code := run([]string{"-e", "klingon", "x", writeFile(t, "x")}, &out, &errs); code != 2 {
		t.Errorf("expected exit code 2 for unknown encoding, have %d", code)
	}
	if code := run([]string{"-regexp", "(", "x", writeFile(t, "x")}, &out, &errs); code != 2 {
		t.Errorf("expected exit code 2 for invalid regexp, have %d", code)
	}
}

func TestHTMLInput(t *testing.T) {
	path := writeFile(t, "<p>one <b>two</b></p><p>three</p>")
	var out, errs bytes.Buffer
	if code := run([]string{"-text", "-r", "2", "two", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d: %s", code, errs.String())
	}
	if out.String() != "one 2three" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestVerboseTracing(t *testing.T) {
	path := writeFile(t, "one two one three one")
	var out, errs bytes.Buffer
	if code := run([]string{"-v", "-r", "XYZW", "one", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d: %s", code, errs.String())
	}
	for _, line := range []string{"textfile: loaded", "u16find: " + path} {
		if !strings.Contains(errs.String(), line) {
			t.Errorf("expected trace output to contain %q, have\n%s", line, errs.String())
		}
	}
	errs.Reset()
	if code := run([]string{"one", path}, &out, &errs); code != 0 {
		t.Fatalf("expected exit code 0, have %d", code)
	}
	if errs.Len() != 0 {
		t.Errorf("expected tracing to be off without -v, have %q", errs.String())
	}
}
