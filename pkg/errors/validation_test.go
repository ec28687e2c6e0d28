package errors

import (
	"math"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means none", "", false},
		{"simple", "road", false},
		{"with digits and dashes", "road-12_a.b", false},
		{"leading underscore", "_x", false},

		{"leading digit", "1road", true},
		{"space", "main street", true},
		{"quote", `a"b`, true},
		{"hash", "#road", true},
		{"too long", "a" + string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStyle) {
				t.Errorf("ValidateID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateClasses(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"label", false},
		{"label  road-name bold", false},
		{"-neg", false},
		{"9lives", true},
		{"a<b", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if err := ValidateClasses(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("ValidateClasses(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNumbers(t *testing.T) {
	if err := ValidateUnitInterval("opacity", 0.5); err != nil {
		t.Errorf("0.5 should be valid: %v", err)
	}
	for _, v := range []float64{-0.1, 1.1, math.NaN()} {
		if err := ValidateUnitInterval("opacity", v); err == nil {
			t.Errorf("ValidateUnitInterval(%v) should fail", v)
		}
	}

	if err := ValidateNonNegative("radius", 0); err != nil {
		t.Errorf("0 should be valid: %v", err)
	}
	for _, v := range []float64{-1, math.Inf(1), math.NaN()} {
		if err := ValidateNonNegative("radius", v); err == nil {
			t.Errorf("ValidateNonNegative(%v) should fail", v)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "styles/roads.toml", false},
		{"valid filename only", "default.toml", false},
		{"valid with dots", "v1.2.3/style.toml", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateCacheURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"redis://localhost:6379/0", false},
		{"rediss://user:pw@cache.example.com:6380", false},
		{"", true},
		{"http://localhost:6379", true},
		{"localhost:6379", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if err := ValidateCacheURL(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("ValidateCacheURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
