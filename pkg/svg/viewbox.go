package svg

import (
	"encoding/json"
	"math"
	"strconv"
)

// ViewBox is an axis-aligned bounding rectangle.
//
// The zero ViewBox is the degenerate box at the origin, not the empty box;
// start folds from [EmptyViewBox].
type ViewBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyViewBox returns the identity of [ViewBox.Add]: a box whose extremes
// are infinite in the wrong direction so that any real bound wins.
func EmptyViewBox() ViewBox {
	return ViewBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// NewViewBox returns the box spanning the given extremes.
func NewViewBox(minX, minY, maxX, maxY float64) ViewBox {
	return ViewBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Add returns the smallest box containing both v and o.
func (v ViewBox) Add(o ViewBox) ViewBox {
	return ViewBox{
		MinX: min(v.MinX, o.MinX),
		MinY: min(v.MinY, o.MinY),
		MaxX: max(v.MaxX, o.MaxX),
		MaxY: max(v.MaxY, o.MaxY),
	}
}

// IsEmpty reports whether v contains no point.
func (v ViewBox) IsEmpty() bool {
	return v.MaxX < v.MinX || v.MaxY < v.MinY
}

// Width is zero for an empty box.
func (v ViewBox) Width() float64 {
	if v.IsEmpty() {
		return 0
	}
	return v.MaxX - v.MinX
}

// Height is zero for an empty box.
func (v ViewBox) Height() float64 {
	if v.IsEmpty() {
		return 0
	}
	return v.MaxY - v.MinY
}

// Contains reports whether (x, y) lies inside v, edges included.
func (v ViewBox) Contains(x, y float64) bool {
	return x >= v.MinX && x <= v.MaxX && y >= v.MinY && y <= v.MaxY
}

// Expand grows v by margin on every side. Empty boxes stay empty.
func (v ViewBox) Expand(margin float64) ViewBox {
	if v.IsEmpty() {
		return v
	}
	return ViewBox{
		MinX: v.MinX - margin, MinY: v.MinY - margin,
		MaxX: v.MaxX + margin, MaxY: v.MaxY + margin,
	}
}

// String renders v in viewBox attribute form: "min-x min-y width height".
// The empty box renders as "0 0 0 0".
func (v ViewBox) String() string {
	if v.IsEmpty() {
		return "0 0 0 0"
	}
	return formatNumber(v.MinX) + " " + formatNumber(v.MinY) + " " +
		formatNumber(v.Width()) + " " + formatNumber(v.Height())
}

type viewBoxJSON struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MarshalJSON encodes v as {"min_x", "min_y", "width", "height"}. The
// empty box encodes as null.
func (v ViewBox) MarshalJSON() ([]byte, error) {
	if v.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(viewBoxJSON{MinX: v.MinX, MinY: v.MinY, Width: v.Width(), Height: v.Height()})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *ViewBox) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = EmptyViewBox()
		return nil
	}
	var j viewBoxJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*v = NewViewBox(j.MinX, j.MinY, j.MinX+j.Width, j.MinY+j.Height)
	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func foldBounds[E any](items []E, bound func(E) ViewBox) ViewBox {
	vb := EmptyViewBox()
	for _, item := range items {
		vb = vb.Add(bound(item))
	}
	return vb
}
