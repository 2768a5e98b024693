package board

import (
	"fmt"
	"image/color"
)

// Kind identifies a catalog entry.
type Kind int

const (
	KindStraight Kind = iota
	KindSquare
	KindTee
	KindJay
	KindEl
	KindSkewS
	KindSkewZ
)

var kindNames = [...]string{
	KindStraight: "STRAIGHT",
	KindSquare:   "SQUARE",
	KindTee:      "TEE",
	KindJay:      "JAY",
	KindEl:       "EL",
	KindSkewS:    "SKEW_S",
	KindSkewZ:    "SKEW_Z",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Template is the immutable description of a piece before it is placed.
type Template struct {
	Kind  Kind
	Shape Shape
	Color color.RGBA
}

// Clone returns a copy with its own shape matrix.
func (t Template) Clone() Template {
	t.Shape = t.Shape.Clone()
	return t
}

// Catalog is a fixed, ordered set of templates that pieces are drawn from.
type Catalog struct {
	templates []Template
}

// NewCatalog validates every template and returns a catalog holding copies.
// It panics on an empty catalog or a malformed shape.
func NewCatalog(templates ...Template) *Catalog {
	if len(templates) == 0 {
		panic("catalog requires at least one template")
	}

	c := &Catalog{templates: make([]Template, len(templates))}
	for i, t := range templates {
		shape, err := NewShape(t.Shape)
		if err != nil {
			panic(fmt.Sprintf("catalog entry %d (%s): %v", i, t.Kind, err))
		}
		if shape.Empty() {
			panic(fmt.Sprintf("catalog entry %d (%s): %v: no occupied cells", i, t.Kind, ErrMalformedShape))
		}
		t.Shape = shape
		c.templates[i] = t
	}
	return c
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Template returns a copy of the template at index i.
func (c *Catalog) Template(i int) Template {
	return c.templates[i].Clone()
}

var (
	colorRed     = color.RGBA{255, 0, 0, 255}
	colorGreen   = color.RGBA{0, 255, 0, 255}
	colorBlue    = color.RGBA{0, 0, 255, 255}
	colorYellow  = color.RGBA{255, 255, 0, 255}
	colorMagenta = color.RGBA{255, 0, 255, 255}
	colorCyan    = color.RGBA{0, 255, 255, 255}
	colorWhite   = color.RGBA{255, 255, 255, 255}
)

func mustParse(rows ...string) Shape {
	s, err := ParseShape(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultCatalog returns the seven classic pieces with their fixed colors.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Template{Kind: KindStraight, Color: colorRed, Shape: mustParse(
			"....",
			"####",
			"....",
			"....",
		)},
		Template{Kind: KindSquare, Color: colorGreen, Shape: mustParse(
			"##",
			"##",
		)},
		Template{Kind: KindTee, Color: colorBlue, Shape: mustParse(
			".#.",
			"###",
			"...",
		)},
		Template{Kind: KindJay, Color: colorYellow, Shape: mustParse(
			"#..",
			"###",
			"...",
		)},
		Template{Kind: KindEl, Color: colorMagenta, Shape: mustParse(
			"..#",
			"###",
			"...",
		)},
		Template{Kind: KindSkewS, Color: colorCyan, Shape: mustParse(
			".##",
			"##.",
			"...",
		)},
		Template{Kind: KindSkewZ, Color: colorWhite, Shape: mustParse(
			"##.",
			".##",
			"...",
		)},
	)
}
