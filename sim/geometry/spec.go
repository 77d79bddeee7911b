package geometry

import "fmt"

// Spec is the declarative obstacle description loaded from a scenario file.
// Unused fields for a given type are ignored.
type Spec struct {
	Type      string  `yaml:"type"`                 // none | circle | ellipse | rect | airfoil
	CX        float64 `yaml:"cx,omitempty"`         // center / leading edge x
	CY        float64 `yaml:"cy,omitempty"`         // center / leading edge y
	R         float64 `yaml:"r,omitempty"`          // circle radius
	A         float64 `yaml:"a,omitempty"`          // ellipse semi-axis along x
	B         float64 `yaml:"b,omitempty"`          // ellipse semi-axis along y
	W         float64 `yaml:"w,omitempty"`          // rect width
	H         float64 `yaml:"h,omitempty"`          // rect height
	Chord     float64 `yaml:"chord,omitempty"`      // airfoil chord length in cells
	Camber    float64 `yaml:"camber,omitempty"`     // airfoil camber fraction
	CamberPos float64 `yaml:"camber_pos,omitempty"` // airfoil max-camber position
	Thickness float64 `yaml:"thickness,omitempty"`  // airfoil thickness fraction
}

var validObstacleTypes = map[string]bool{
	"": true, "none": true, "circle": true, "ellipse": true, "rect": true, "airfoil": true,
}

// CharacteristicLength returns the obstacle scale used to derive viscosity
// from a target Reynolds number: radius for circles, the downstream
// semi-axis for ellipses, half-width for rectangles, the chord for
// airfoils, and 0 for no obstacle.
func (s Spec) CharacteristicLength() float64 {
	switch s.Type {
	case "circle":
		return s.R
	case "ellipse":
		return s.A
	case "rect":
		return s.W / 2
	case "airfoil":
		return s.Chord
	}
	return 0
}

// Validate checks the obstacle type against the registry of known shapes.
// Parameter checks happen in Build, where the shape is actually constructed.
func (s Spec) Validate() error {
	if !validObstacleTypes[s.Type] {
		return fmt.Errorf("unknown obstacle type %q", s.Type)
	}
	return nil
}

// Build constructs the mask a Spec describes over a w×h grid.
func Build(s Spec, w, h int) (*Mask, error) {
	switch s.Type {
	case "", "none":
		return New(w, h), nil
	case "circle":
		if s.R <= 0 {
			return nil, fmt.Errorf("circle obstacle needs r > 0, got %v", s.R)
		}
		return Circle(w, h, s.CX, s.CY, s.R), nil
	case "ellipse":
		if s.A <= 0 || s.B <= 0 {
			return nil, fmt.Errorf("ellipse obstacle needs a, b > 0, got a=%v b=%v", s.A, s.B)
		}
		return Ellipse(w, h, s.CX, s.CY, s.A, s.B), nil
	case "rect":
		if s.W <= 0 || s.H <= 0 {
			return nil, fmt.Errorf("rect obstacle needs w, h > 0, got w=%v h=%v", s.W, s.H)
		}
		return Rect(w, h, s.CX, s.CY, s.W, s.H), nil
	case "airfoil":
		if s.Chord <= 0 {
			return nil, fmt.Errorf("airfoil obstacle needs chord > 0, got %v", s.Chord)
		}
		return Airfoil(w, h, s.CX, s.CY, s.Chord, s.Camber, s.CamberPos, s.Thickness), nil
	}
	return nil, fmt.Errorf("unknown obstacle type %q", s.Type)
}
