package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/Yeicor/pointplot-ui/plot"
)

func TestFormFocus(t *testing.T) {
	f := NewForm()
	if f.Focused() || f.Type([]rune("abc")) {
		t.Fatal("typing without focus must be ignored")
	}
	f.FocusNext()
	if f.Focus != FieldFile {
		t.Fatalf("expected the first field to get focus, got %v", f.Focus)
	}
	for i := 0; i < int(fieldCount)-1; i++ {
		f.FocusNext()
	}
	if f.Focus != FieldProbeZ {
		t.Fatalf("expected the last field, got %v", f.Focus)
	}
	f.FocusNext()
	if f.Focus != FieldFile {
		t.Fatalf("expected the focus to wrap around, got %v", f.Focus)
	}
	f.Blur()
	if f.Focused() {
		t.Fatal("expected no focus after blur")
	}
}

func TestFormEditing(t *testing.T) {
	f := NewForm()
	f.FocusNext()
	f.Type([]rune("da\tté.txt\n"))
	if f.Values[FieldFile] != "daté.txt" {
		t.Fatalf("unexpected value %q", f.Values[FieldFile])
	}
	f.Backspace()
	f.Backspace()
	if f.Values[FieldFile] != "daté.t" {
		t.Fatalf("unexpected value after backspace %q", f.Values[FieldFile])
	}
	f.Values[FieldFile] = ""
	if f.Backspace() {
		t.Fatal("backspace on an empty field must be a no-op")
	}
}

func TestFormPaste(t *testing.T) {
	f := NewForm()
	f.ReadClipboard = func() (string, error) { return "1.5e3\nignored", nil }
	if ok, _ := f.Paste(); ok {
		t.Fatal("pasting without focus must be ignored")
	}
	f.FocusNext()
	f.FocusNext()
	if ok, err := f.Paste(); !ok || err != nil {
		t.Fatalf("expected the paste to succeed, got %v %v", ok, err)
	}
	if f.Values[FieldDisplayMin] != "1.5e3" {
		t.Fatalf("expected only the first line to be pasted, got %q", f.Values[FieldDisplayMin])
	}
	errClipboard := errors.New("no clipboard")
	f.ReadClipboard = func() (string, error) { return "", errClipboard }
	if _, err := f.Paste(); !errors.Is(err, errClipboard) {
		t.Fatalf("expected the clipboard error, got %v", err)
	}
}

func TestFormParams(t *testing.T) {
	f := NewForm()
	f.Values = [fieldCount]string{" data.txt ", "0", "10", "1", "2", "3"}
	f.ToggleLog(0)
	f.ToggleLog(2)
	f.ToggleLog(2)
	f.ToggleLog(7)
	expected := plot.DisplayParams{Log: plot.LogAxes{X: true}, RangeMin: "0", RangeMax: "10", ProbeX: "1", ProbeY: "2", ProbeZ: "3"}
	if got := f.Params(); got != expected {
		t.Fatalf("expected %+v, got %+v", expected, got)
	}
	if f.Path() != "data.txt" {
		t.Fatalf("unexpected path %q", f.Path())
	}
}

func TestFormSeedDisplayRange(t *testing.T) {
	f := NewForm()
	if !f.SeedDisplayRange("1", "9") || f.Values[FieldDisplayMin] != "1" || f.Values[FieldDisplayMax] != "9" {
		t.Fatal("expected empty range fields to be seeded")
	}
	f.Values[FieldDisplayMin] = ""
	if f.SeedDisplayRange("2", "8") || f.Values[FieldDisplayMax] != "9" {
		t.Fatal("user edited range fields must not be overwritten")
	}
}

func TestFormLines(t *testing.T) {
	f := NewForm()
	f.Focus = FieldProbeY
	f.Values[FieldProbeY] = "4"
	lines := f.Lines()
	if len(lines) != int(fieldCount)+1 {
		t.Fatalf("unexpected line count %d", len(lines))
	}
	if lines[FieldProbeY] != "> Probe Y: 4_" || !strings.HasPrefix(lines[FieldFile], "  File: ") {
		t.Fatalf("unexpected lines %q", lines)
	}
	if lines[fieldCount] != "  Log axes: X=off Y=off Z=off" {
		t.Fatalf("unexpected toggles line %q", lines[fieldCount])
	}
}
