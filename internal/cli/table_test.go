package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	tbl := newTable("lightness", "chroma")
	tbl.addRow("0.0000", "0.0000")
	tbl.addRow("0.5000", "0.2917")

	got := tbl.render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("render() produced %d lines, want 4:\n%s", len(lines), got)
	}
	if lines[0] != "lightness  chroma" {
		t.Errorf("header = %q, want %q", lines[0], "lightness  chroma")
	}
	if lines[1] != "---------  ------" {
		t.Errorf("rule = %q, want %q", lines[1], "---------  ------")
	}
	if lines[2] != "0.0000     0.0000" {
		t.Errorf("row = %q, want %q", lines[2], "0.0000     0.0000")
	}
}

func TestTableWidensForCells(t *testing.T) {
	tbl := newTable("hex", "name")
	tbl.addRow("#22c55e", "a rather long cell value")

	got := tbl.render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("render() produced %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[2] != "#22c55e  a rather long cell value" {
		t.Errorf("row = %q, want cell-aligned columns", lines[2])
	}
	if strings.HasSuffix(lines[0], " ") {
		t.Errorf("header has trailing whitespace: %q", lines[0])
	}
}

func TestTableShortRowPadded(t *testing.T) {
	tbl := newTable("a", "b", "c")
	tbl.addRow("x")

	got := tbl.render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("render() produced %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[2] != "x" {
		t.Errorf("short row = %q, want %q", lines[2], "x")
	}
}
