package table

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"NAME", "TITLE", "SIZE"},
		{"main", "Main Menu", "27"},
		{"shop", "Shop", "36"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"NAME  TITLE      SIZE",
		"main  Main Menu    27",
		"shop  Shop         36",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("expected\n%s\ngot\n%s", strings.Join(want, "\n"), strings.Join(got, "\n"))
	}
}

func TestFormatPadsShortRows(t *testing.T) {
	got := Format([][]string{{"a", "b"}, {"ccc"}}, nil)
	if got[0] != "a    b" || got[1] != "ccc" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteEmitsLines(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, [][]string{{"x", "y"}}, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if b.String() != "x  y\n" {
		t.Fatalf("expected %q, got %q", "x  y\n", b.String())
	}
	if err := Write(failingWriter{}, [][]string{{"x"}}, nil); err == nil {
		t.Fatalf("expected write error")
	}
}
