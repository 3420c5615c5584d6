package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ----------------------------------------------------------------------------
// ToPgFloat8 Tests
// ----------------------------------------------------------------------------

func TestToPgFloat8(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue float64
	}{
		// Valid: integers and decimals
		{name: "positive integer", input: "123", wantValid: true, wantValue: 123},
		{name: "zero", input: "0", wantValid: true, wantValue: 0},
		{name: "negative integer", input: "-456", wantValid: true, wantValue: -456},
		{name: "decimal number", input: "45.5", wantValid: true, wantValue: 45.5},
		{name: "leading decimal point", input: ".99", wantValid: true, wantValue: 0.99},
		{name: "trailing decimal point", input: "99.", wantValid: true, wantValue: 99},
		{name: "explicit positive sign", input: "+12.5", wantValid: true, wantValue: 12.5},

		// Valid: scientific notation
		{name: "scientific positive exponent", input: "1.5e3", wantValid: true, wantValue: 1500},
		{name: "scientific negative exponent", input: "1.5E-3", wantValid: true, wantValue: 0.0015},

		// Valid: whitespace is trimmed
		{name: "surrounded by whitespace", input: "  123.45  ", wantValid: true, wantValue: 123.45},

		// Missing: empty and NA tokens
		{name: "empty string", input: "", wantValid: false},
		{name: "only whitespace", input: "   ", wantValid: false},
		{name: "NA token", input: "NA", wantValid: false},
		{name: "NaN token", input: "NaN", wantValid: false},
		{name: "null token", input: "null", wantValid: false},

		// Missing: non-numeric content
		{name: "alphabetic string", input: "abc", wantValid: false},
		{name: "mixed alphanumeric", input: "12abc34", wantValid: false},
		{name: "comma decimal separator", input: "45,5", wantValid: false},
		{name: "thousands separator", input: "1,234", wantValid: false},
		{name: "currency symbol", input: "$12", wantValid: false},
		{name: "multiple decimal points", input: "1.2.3", wantValid: false},
		{name: "hex float", input: "0x1p3", wantValid: false},
		{name: "underscore separator", input: "1_000", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPgFloat8(tt.input)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.InDelta(t, tt.wantValue, got.Float64, 1e-12)
			}
		})
	}
}

func TestToPgFloat8_Infinity(t *testing.T) {
	assert.True(t, math.IsInf(ToPgFloat8("inf").Float64, 1))
	assert.True(t, math.IsInf(ToPgFloat8("-Infinity").Float64, -1))
	assert.True(t, ToPgFloat8("1e400").Valid, "overflow keeps the infinite value")
	assert.True(t, math.IsInf(ToPgFloat8("1e400").Float64, 1))
}

// ----------------------------------------------------------------------------
// ToPgInt8 Tests
// ----------------------------------------------------------------------------

func TestToPgInt8(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue int64
	}{
		{name: "plain integer", input: "2", wantValid: true, wantValue: 2},
		{name: "negative", input: "-7", wantValid: true, wantValue: -7},
		{name: "explicit plus", input: "+3", wantValid: true, wantValue: 3},
		{name: "padded", input: " 20231 ", wantValid: true, wantValue: 20231},
		{name: "integral float", input: "2.0", wantValid: true, wantValue: 2},
		{name: "integral scientific", input: "2e3", wantValid: true, wantValue: 2000},
		{name: "max int64", input: "9223372036854775807", wantValid: true, wantValue: math.MaxInt64},
		{name: "min int64", input: "-9223372036854775808", wantValid: true, wantValue: math.MinInt64},
		{name: "max int64 with zero fraction", input: "9223372036854775807.0", wantValid: true, wantValue: math.MaxInt64},
		{name: "above 2^53 stays exact", input: "9007199254740993.0", wantValid: true, wantValue: 9007199254740993},
		{name: "integral after exponent", input: "1.5e1", wantValid: true, wantValue: 15},
		{name: "negative exponent", input: "2000e-3", wantValid: true, wantValue: 2},
		{name: "zero with exponent", input: "0.0e5", wantValid: true, wantValue: 0},
		{name: "exact max via exponent", input: "9.223372036854775807e18", wantValid: true, wantValue: math.MaxInt64},

		{name: "fractional", input: "2.5", wantValid: false},
		{name: "empty", input: "", wantValid: false},
		{name: "text", input: "abc", wantValid: false},
		{name: "infinity", input: "inf", wantValid: false},
		{name: "too large", input: "1e20", wantValid: false},
		{name: "below min int64", input: "-9223372036854775809", wantValid: false},
		{name: "above max int64", input: "9223372036854775808", wantValid: false},
		{name: "above max int64 with fraction", input: "9223372036854775808.0", wantValid: false},
		{name: "tiny fraction", input: "2.0000000000000001", wantValid: false},
		{name: "huge exponent", input: "1e999999", wantValid: false},
		{name: "tiny exponent", input: "1e-999999", wantValid: false},
		{name: "NA token", input: "N/A", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPgInt8(tt.input)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, got.Int64)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ToPgText Tests
// ----------------------------------------------------------------------------

func TestToPgText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
	}{
		{name: "plain", input: "A1", wantValid: true, want: "A1"},
		{name: "whitespace preserved", input: " A1 ", wantValid: true, want: " A1 "},
		{name: "numeric looking", input: "007", wantValid: true, want: "007"},
		{name: "empty is missing", input: "", wantValid: false},
		{name: "whitespace only is missing", input: "  ", wantValid: false},
		{name: "NA token is missing", input: "NA", wantValid: false},
		{name: "<NA> is missing", input: "<NA>", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPgText(tt.input)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.want, got.String)
		})
	}
}

func TestToPgRaw(t *testing.T) {
	assert.Equal(t, "NA", ToPgRaw("NA").String)
	assert.True(t, ToPgRaw("").Valid, "raw cells keep empty strings")
}

func TestParseFieldType(t *testing.T) {
	tests := []struct {
		input   string
		want    FieldType
		wantErr bool
	}{
		{input: "string", want: FieldText},
		{input: "Text", want: FieldText},
		{input: "float64", want: FieldFloat},
		{input: "float", want: FieldFloat},
		{input: "int64", want: FieldInt},
		{input: " int ", want: FieldInt},
		{input: "bool", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFieldType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
