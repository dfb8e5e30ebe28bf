package plot

import (
	"fmt"
	"io"
)

// DefaultTitle is the title of a session without a loaded file.
const DefaultTitle = "Point Plot 3D"

// Session owns the loaded data set, the last displayed scene and the view transform.
// It is not safe for concurrent use: all calls must come from the same goroutine (the UI one).
type Session struct {
	Path        string // Path of the loaded file, empty if none
	Points      []DataPoint
	Params      DisplayParams
	Perspective float64
	View        ViewTransform
	Scene       *Scene // Last successfully built scene (nil until the first one)
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{Perspective: DefaultPerspective, View: NewViewTransform()}
}

// Load replaces the data set with the points read from r and redisplays it. On read errors the previous data set is
// kept. The returned bool reports whether the scene was rebuilt.
func (s *Session) Load(path string, r io.Reader) (bool, error) {
	points, err := Parse(r)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	s.Path = path
	s.Points = points
	return s.Redisplay(), nil
}

// Redisplay rebuilds the scene from the current data set and Params, and refits the projection basis. It is a no-op
// returning false if there are no points or the display range cannot be parsed.
func (s *Session) Redisplay() bool {
	if len(s.Points) == 0 {
		return false
	}
	scene, err := BuildScene(s.Points, s.Params)
	if err != nil {
		return false
	}
	s.Scene = scene
	s.View.Fit(scene.Ranges, s.Perspective)
	return true
}

// Title is the window title for the session.
func (s *Session) Title() string {
	if s.Path == "" {
		return DefaultTitle
	}
	return s.Path
}

// MinValueLabel is the smallest value of the data set, or "" if empty.
func (s *Session) MinValueLabel() string {
	min, _, ok := ValueExtrema(s.Points)
	if !ok {
		return ""
	}
	return FormatFloat(min)
}

// MaxValueLabel is the largest value of the data set, or "" if empty.
func (s *Session) MaxValueLabel() string {
	_, max, ok := ValueExtrema(s.Points)
	if !ok {
		return ""
	}
	return FormatFloat(max)
}
