package curves

import (
	"errors"
	"math"
	"testing"
)

func TestShapesOrder(t *testing.T) {
	want := []Shape{Astroid, Cycloid, HuygensCycloid, HypoCycloid, Line, Circle, Ellipse, Fancy, Starfish}
	got := Shapes()
	if len(got) != len(want) {
		t.Fatalf("Shapes() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Shapes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	var zero Shape
	if zero != Astroid {
		t.Errorf("zero Shape = %v, want astroid", zero)
	}
}

func TestShapeStringAndTitle(t *testing.T) {
	tests := []struct {
		shape Shape
		name  string
		title string
	}{
		{Astroid, "astroid", "Astroid"},
		{HuygensCycloid, "huygens-cycloid", "Huygens Cycloid"},
		{HypoCycloid, "hypocycloid", "Hypocycloid"},
		{Starfish, "starfish", "Starfish"},
		{Shape(99), "Shape(99)", "Shape(99)"},
	}
	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.shape.Title(); got != tt.title {
			t.Errorf("Title() = %q, want %q", got, tt.title)
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
	}{
		{"astroid", Astroid},
		{"  Cycloid ", Cycloid},
		{"huygens-cycloid", HuygensCycloid},
		{"Huygens Cycloid", HuygensCycloid},
		{"huygens_cycloid", HuygensCycloid},
		{"huygens", HuygensCycloid},
		{"hypo", HypoCycloid},
		{"HYPOCYCLOID", HypoCycloid},
		{"line", Line},
		{"circle", Circle},
		{"ellipse", Ellipse},
		{"fancy", Fancy},
		{"starfish", Starfish},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if err != nil {
			t.Errorf("ParseShape(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, s := range Shapes() {
		if got, err := ParseShape(s.String()); err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}

	if _, err := ParseShape("spiral"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("ParseShape(spiral) err = %v, want ErrUnknownShape", err)
	}
}

func TestShapeText(t *testing.T) {
	var s Shape
	if err := s.UnmarshalText([]byte("Fancy")); err != nil || s != Fancy {
		t.Fatalf("UnmarshalText(Fancy) = %v, %v", s, err)
	}
	b, err := s.MarshalText()
	if err != nil || string(b) != "fancy" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}
	if _, err := Shape(-3).MarshalText(); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("MarshalText(invalid) err = %v", err)
	}
}

func TestDefaultParams(t *testing.T) {
	tests := []struct {
		shape Shape
		want  Params
	}{
		{Astroid, Params{40, 2 * math.Pi, 256}},
		{Cycloid, Params{4, 6 * math.Pi, 128}},
		{HuygensCycloid, Params{4, 4 * math.Pi, 256}},
		{HypoCycloid, Params{15, 2 * math.Pi, 256}},
		{Line, Params{100, 1, 128}},
		{Circle, Params{165, 2 * math.Pi, 128}},
		{Ellipse, Params{75, 2 * math.Pi, 256}},
		{Fancy, Params{10, 12 * math.Pi, 512}},
		{Starfish, Params{25, 6 * math.Pi, 256}},
		{Shape(50), Params{40, 2 * math.Pi, 256}},
	}
	for _, tt := range tests {
		got := DefaultParams(tt.shape)
		if got != tt.want {
			t.Errorf("DefaultParams(%v) = %+v, want %+v", tt.shape, got, tt.want)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("DefaultParams(%v).Validate() = %v", tt.shape, err)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"ok", Params{1, 1, 1}, nil},
		{"zero scale", Params{0, 1, 1}, ErrInvalidScale},
		{"NaN scale", Params{math.NaN(), 1, 1}, ErrInvalidScale},
		{"infinite scale", Params{math.Inf(1), 1, 1}, ErrInvalidScale},
		{"negative interval", Params{1, -2, 1}, ErrInvalidInterval},
		{"zero steps", Params{1, 1, 0}, ErrInvalidSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
