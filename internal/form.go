package internal

import (
	"strings"
	"unicode"

	"github.com/Yeicor/pointplot-ui/plot"
	"github.com/atotto/clipboard"
)

// Field is one of the text inputs of the viewer.
type Field int

const (
	FieldNone Field = iota - 1
	FieldFile
	FieldDisplayMin
	FieldDisplayMax
	FieldProbeX
	FieldProbeY
	FieldProbeZ
	fieldCount
)

var fieldLabels = [fieldCount]string{"File", "Display min", "Display max", "Probe X", "Probe Y", "Probe Z"}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "none"
	}
	return fieldLabels[f]
}

// Form holds the text inputs and log axis toggles. Like plot.Session, it belongs to the UI goroutine.
type Form struct {
	Values [fieldCount]string
	Focus  Field
	Log    plot.LogAxes
	// ReadClipboard is the source for Paste, replaceable for tests.
	ReadClipboard func() (string, error)
}

// NewForm returns an empty form without focus.
func NewForm() *Form {
	return &Form{Focus: FieldNone, ReadClipboard: clipboard.ReadAll}
}

// Focused reports whether keyboard input goes to a field.
func (f *Form) Focused() bool {
	return f.Focus != FieldNone
}

// FocusNext moves the focus to the next field, wrapping around (and starting at FieldFile).
func (f *Form) FocusNext() {
	f.Focus = (f.Focus + 1) % fieldCount
}

// Blur releases the focus.
func (f *Form) Blur() {
	f.Focus = FieldNone
}

// Type appends the printable runes to the focused field.
func (f *Form) Type(runes []rune) bool {
	if !f.Focused() {
		return false
	}
	var sb strings.Builder
	for _, r := range runes {
		if unicode.IsPrint(r) {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return false
	}
	f.Values[f.Focus] += sb.String()
	return true
}

// Backspace removes the last rune of the focused field.
func (f *Form) Backspace() bool {
	if !f.Focused() {
		return false
	}
	runes := []rune(f.Values[f.Focus])
	if len(runes) == 0 {
		return false
	}
	f.Values[f.Focus] = string(runes[:len(runes)-1])
	return true
}

// Paste types the first line of the clipboard into the focused field.
func (f *Form) Paste() (bool, error) {
	if !f.Focused() {
		return false, nil
	}
	s, err := f.ReadClipboard()
	if err != nil {
		return false, err
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return f.Type([]rune(s)), nil
}

// ToggleLog flips the logarithmic mode of axis 0 (X), 1 (Y) or 2 (Z).
func (f *Form) ToggleLog(axis int) {
	switch axis {
	case 0:
		f.Log.X = !f.Log.X
	case 1:
		f.Log.Y = !f.Log.Y
	case 2:
		f.Log.Z = !f.Log.Z
	}
}

// Path is the trimmed File field.
func (f *Form) Path() string {
	return strings.TrimSpace(f.Values[FieldFile])
}

// Params collects the display inputs.
func (f *Form) Params() plot.DisplayParams {
	return plot.DisplayParams{
		Log:      f.Log,
		RangeMin: f.Values[FieldDisplayMin],
		RangeMax: f.Values[FieldDisplayMax],
		ProbeX:   f.Values[FieldProbeX],
		ProbeY:   f.Values[FieldProbeY],
		ProbeZ:   f.Values[FieldProbeZ],
	}
}

// SeedDisplayRange fills the display range with the given labels, only if both fields are blank.
func (f *Form) SeedDisplayRange(min, max string) bool {
	if strings.TrimSpace(f.Values[FieldDisplayMin]) != "" || strings.TrimSpace(f.Values[FieldDisplayMax]) != "" {
		return false
	}
	f.Values[FieldDisplayMin] = min
	f.Values[FieldDisplayMax] = max
	return true
}

// Lines renders the form as text, one line per field plus the log toggles.
func (f *Form) Lines() []string {
	lines := make([]string, 0, fieldCount+1)
	for i := Field(0); i < fieldCount; i++ {
		prefix, cursor := "  ", ""
		if i == f.Focus {
			prefix, cursor = "> ", "_"
		}
		lines = append(lines, prefix+i.String()+": "+f.Values[i]+cursor)
	}
	lines = append(lines, "  Log axes: X="+onOff(f.Log.X)+" Y="+onOff(f.Log.Y)+" Z="+onOff(f.Log.Z))
	return lines
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
