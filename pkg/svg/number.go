package svg

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/matzehuels/geosvg/pkg/geo"
)

// ToFloat converts a coordinate to float64. NaN and infinities become 0.
func ToFloat[T geo.Scalar](v T) float64 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// decimalFloat is ToFloat applied to the shortest decimal form of v, so a
// float32 0.1 becomes 0.1 rather than 0.10000000149011612.
func decimalFloat[T geo.Scalar](v T) float64 {
	if !isFloat[T]() || unsafe.Sizeof(v) != 4 {
		return ToFloat(v)
	}
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	if err != nil {
		return 0
	}
	return ToFloat(f)
}

// FormatCoord writes a coordinate the way it is emitted in markup.
// Floats keep a fractional part; integers print as integers.
func FormatCoord[T geo.Scalar](v T) string {
	switch {
	case isFloat[T]():
		return formatFloatBits(float64(v), int(unsafe.Sizeof(v))*8)
	case isUnsigned[T]():
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

func formatFloat(f float64) string { return formatFloatBits(f, 64) }

func formatFloatBits(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func isFloat[T geo.Scalar]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

func isUnsigned[T geo.Scalar]() bool {
	var zero T
	return zero-1 > 0
}
