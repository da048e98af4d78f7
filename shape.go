package curves

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Shape identifies one of the supported parametric curves.
type Shape int

const (
	// Astroid is the four-cusped hypocycloid. It is the zero value.
	Astroid Shape = iota
	// Cycloid is the curve traced by a point on a rolling circle.
	Cycloid
	// HuygensCycloid is the epicycloid with two cusps (nephroid).
	HuygensCycloid
	// HypoCycloid is the three-cusped deltoid.
	HypoCycloid
	// Line is the straight segment from (1, 1) to the origin.
	Line
	// Circle is the unit circle.
	Circle
	// Ellipse has semi-axes 2 and 1.1.
	Ellipse
	// Fancy is an epitrochoid-like rosette.
	Fancy
	// Starfish is a five-armed hypotrochoid.
	Starfish

	numShapes
)

var shapeNames = [numShapes]string{
	Astroid:        "astroid",
	Cycloid:        "cycloid",
	HuygensCycloid: "huygens-cycloid",
	HypoCycloid:    "hypocycloid",
	Line:           "line",
	Circle:         "circle",
	Ellipse:        "ellipse",
	Fancy:          "fancy",
	Starfish:       "starfish",
}

var shapeAliases = map[string]Shape{
	"huygens":        HuygensCycloid,
	"huygenscycloid": HuygensCycloid,
	"hypo":           HypoCycloid,
	"hypo-cycloid":   HypoCycloid,
	"star":           Starfish,
}

// Shapes returns every supported shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, numShapes)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < numShapes
}

// String returns the canonical lower-case identifier, e.g. "huygens-cycloid".
func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Title returns a human readable caption, e.g. "Huygens Cycloid".
func (s Shape) Title() string {
	if !s.Valid() {
		return s.String()
	}
	// cases.Caser keeps state, so one per call.
	return cases.Title(language.English).String(strings.ReplaceAll(shapeNames[s], "-", " "))
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseShape looks up a shape by name. Matching ignores case and treats
// '_' and ' ' like '-'. A few short aliases such as "huygens" and "hypo"
// are accepted too.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, n := range shapeNames {
		if n == key {
			return Shape(i), nil
		}
	}
	if s, ok := shapeAliases[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
