// Package plot holds the data model of the point viewer: parsing of (x, y, z, value) point lists, axis ranges,
// value colors, the marker scene and the view transform driven by mouse drags.
// Nothing in here depends on the window toolkit.
package plot

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// CommentPrefix marks lines that are ignored by Parse.
const CommentPrefix = "!"

const maxLineLength = 1024 * 1024

// DataPoint is one (x, y, z, value) sample from an input file.
type DataPoint struct {
	X, Y, Z, Value float32
}

// Parse reads a point list, one point per line. Lines are split on commas, spaces and tabs and need at least 4 tokens,
// of which the first 4 must be numbers. Comments, short and malformed lines are skipped without notice.
// The only error returned is a read error from r.
func Parse(r io.Reader) ([]DataPoint, error) {
	var res []DataPoint
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		if p, ok := parseLine(scanner.Text()); ok {
			res = append(res, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func parseLine(line string) (DataPoint, bool) {
	if strings.HasPrefix(line, CommentPrefix) {
		return DataPoint{}, false
	}
	tokens := strings.FieldsFunc(line, isSeparator)
	if len(tokens) < 4 {
		return DataPoint{}, false
	}
	var vals [4]float32
	for i := range vals {
		v, ok := ParseFloat(tokens[i])
		if !ok {
			return DataPoint{}, false
		}
		vals[i] = v
	}
	return DataPoint{X: vals[0], Y: vals[1], Z: vals[2], Value: vals[3]}, true
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

// ParseFloat parses a finite single precision decimal number independently of the current locale ("." is the decimal
// separator, exponents are accepted). Hexadecimal, NaN and infinite values are rejected, as well as values that
// overflow float32. Surrounding whitespace is ignored.
func ParseFloat(s string) (float32, bool) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || !isFinite(float32(v)) {
		return 0, false
	}
	return float32(v), true
}

// FormatFloat is the inverse of ParseFloat, using the shortest representation that parses back to v.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// ValueExtrema returns the smallest and largest values of the points, ignoring NaN values (ok is false if there are no
// comparable values).
func ValueExtrema(points []DataPoint) (min, max float32, ok bool) {
	for _, p := range points {
		if p.Value != p.Value { // NaN
			continue
		}
		if !ok {
			min, max, ok = p.Value, p.Value, true
			continue
		}
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	return min, max, ok
}
