package core

// convert.go coerces raw cell text to typed, nullable values.
//
// Every To* function returns a pgtype value with Valid=false when the cell is
// empty, an NA token, or cannot be parsed as the declared type. Coercion never
// fails loudly: a bad cell is simply missing.

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex validates that a string is a plain decimal or scientific number.
// Hex floats, digit separators and currency symbols are rejected.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// infRegex matches the infinity spellings accepted as float values.
var infRegex = regexp.MustCompile(`^[+-]?(?i:inf|infinity)$`)

// naTokens are cell values treated as missing in typed columns.
var naTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsNA reports whether a cell is empty or one of the recognised NA tokens.
func IsNA(s string) bool {
	return naTokens[s] || naTokens[strings.TrimSpace(s)]
}

// ToPgText converts a cell to pgtype.Text.
// Empty cells and NA tokens are invalid; any other text is kept verbatim.
func ToPgText(s string) pgtype.Text {
	if IsNA(s) {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgRaw converts a cell of an unschema'd column to pgtype.Text.
// The cell is always valid, even when empty.
func ToPgRaw(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// ToPgFloat8 converts a cell to pgtype.Float8.
// Accepts decimals, scientific notation and signed infinity.
func ToPgFloat8(s string) pgtype.Float8 {
	f, ok := parseNumber(s)
	if !ok {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: f, Valid: true}
}

// maxInt64Exp bounds the decimal exponent of a non-zero int64: 10^19 already
// exceeds math.MaxInt64.
const maxInt64Exp = 19

// ToPgInt8 converts a cell to pgtype.Int8.
// Values like "2", "2.0" and "2e3" are accepted. Fractional, infinite or
// out-of-range values are invalid. Parsing is exact, so no value is rounded
// into range.
func ToPgInt8(s string) pgtype.Int8 {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return pgtype.Int8{Int64: i, Valid: true}
	}
	if IsNA(s) || !numericRegex.MatchString(s) {
		return pgtype.Int8{Valid: false}
	}

	// pgtype.Numeric does not read exponents, so split it off first.
	mantissa, exp := s, int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return pgtype.Int8{Valid: false}
		}
		mantissa, exp = s[:i], e
	}

	var n pgtype.Numeric
	if err := n.Scan(mantissa); err != nil {
		return pgtype.Int8{Valid: false}
	}
	if n.Int.Sign() == 0 {
		return pgtype.Int8{Int64: 0, Valid: true}
	}

	// Past these bounds the value is out of range or has a fractional part.
	exp += int64(n.Exp)
	if exp > maxInt64Exp || -exp > int64(len(n.Int.String())) {
		return pgtype.Int8{Valid: false}
	}
	n.Exp = int32(exp)

	v, err := n.Int64Value()
	if err != nil {
		return pgtype.Int8{Valid: false}
	}
	return v
}

// parseNumber parses a trimmed cell as float64.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if IsNA(s) {
		return 0, false
	}

	if infRegex.MatchString(s) {
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	if !numericRegex.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range: ParseFloat returns ±Inf with ErrRange, keep it like any overflow.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}
