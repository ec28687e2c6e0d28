package svg

import (
	"encoding/json"
	"math"
	"testing"
)

func TestEmptyViewBoxIsIdentity(t *testing.T) {
	boxes := []ViewBox{
		NewViewBox(0, 0, 10, 10),
		NewViewBox(-5, -3, -1, 2),
		NewViewBox(7, 7, 7, 7),
	}
	for _, b := range boxes {
		if got := EmptyViewBox().Add(b); got != b {
			t.Errorf("Empty.Add(%v) = %v", b, got)
		}
		if got := b.Add(EmptyViewBox()); got != b {
			t.Errorf("%v.Add(Empty) = %v", b, got)
		}
	}
	if !EmptyViewBox().Add(EmptyViewBox()).IsEmpty() {
		t.Error("Empty.Add(Empty) should stay empty")
	}
}

func TestViewBoxAddLaws(t *testing.T) {
	a := NewViewBox(0, 0, 1, 1)
	b := NewViewBox(-2, 3, 0, 4)
	c := NewViewBox(5, -1, 6, 0)

	if a.Add(b) != b.Add(a) {
		t.Errorf("Add not commutative: %v vs %v", a.Add(b), b.Add(a))
	}
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Errorf("Add not associative: %v vs %v", a.Add(b).Add(c), a.Add(b.Add(c)))
	}
	want := NewViewBox(-2, -1, 6, 4)
	if got := a.Add(b).Add(c); got != want {
		t.Errorf("union = %v, want %v", got, want)
	}
}

func TestViewBoxMeasures(t *testing.T) {
	v := NewViewBox(-1, 2, 4, 10)
	if v.Width() != 5 || v.Height() != 8 {
		t.Errorf("Width/Height = %v/%v, want 5/8", v.Width(), v.Height())
	}
	if e := EmptyViewBox(); e.Width() != 0 || e.Height() != 0 {
		t.Errorf("empty Width/Height = %v/%v, want 0/0", e.Width(), e.Height())
	}
	if !v.Contains(-1, 10) || v.Contains(4.5, 5) {
		t.Error("Contains gave wrong answer at the edges")
	}
}

func TestViewBoxExpand(t *testing.T) {
	got := NewViewBox(0, 0, 10, 10).Expand(2)
	if want := NewViewBox(-2, -2, 12, 12); got != want {
		t.Errorf("Expand(2) = %v, want %v", got, want)
	}
	if e := EmptyViewBox().Expand(5); !e.IsEmpty() || !math.IsInf(e.MinX, 1) {
		t.Errorf("Expand on empty = %v, want empty", e)
	}
}

func TestViewBoxString(t *testing.T) {
	tests := []struct {
		v    ViewBox
		want string
	}{
		{NewViewBox(-2, -2, 12, 12), "-2 -2 14 14"},
		{NewViewBox(0.5, 0, 1, 2.25), "0.5 0 0.5 2.25"},
		{EmptyViewBox(), "0 0 0 0"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestViewBoxJSON(t *testing.T) {
	tests := []struct {
		name string
		vb   ViewBox
		want string
	}{
		{"box", NewViewBox(-1, 2, 9, 12), `{"min_x":-1,"min_y":2,"width":10,"height":10}`},
		{"empty", EmptyViewBox(), `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.vb)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var back ViewBox
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if back.IsEmpty() != tt.vb.IsEmpty() || (!back.IsEmpty() && back != tt.vb) {
				t.Errorf("round trip = %v, want %v", back, tt.vb)
			}
		})
	}
}
