package sparse

import (
	"strconv"
	"strings"
)

// String returns the text form: ascending "index|value" tokens followed by the
// size, e.g. "0|1.000000 4|-1.000000 1600". An empty vector is just its size.
func (v *Vector) String() string {
	var b strings.Builder
	b.Grow(v.entries.Len()*16 + 8)

	v.entries.Scan(func(i int, x float64) bool {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('|')
		b.WriteString(formatValue(x))
		b.WriteByte(' ')
		return true
	})
	b.WriteString(strconv.Itoa(v.size))

	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (v *Vector) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the size and
// entries of v.
func (v *Vector) UnmarshalText(text []byte) error {
	if v.frozen {
		return &ErrImmutableOperation{Op: "UnmarshalText"}
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	v.size = parsed.size
	v.entries = parsed.entries
	return nil
}

// Parse reads the text form produced by String.
//
// The last whitespace-separated token is the size; every other token must be
// "index|value" with an in-range integer index and a float value. Duplicate
// indices are rejected. Zero values are pruned.
func Parse(s string) (*Vector, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &ErrParse{Reason: "empty input"}
	}

	sizeToken := fields[len(fields)-1]
	size, err := atoi(sizeToken)
	if err != nil {
		return nil, &ErrParse{Token: sizeToken, Reason: "invalid size", cause: err}
	}
	if size <= 0 {
		return nil, &ErrParse{Token: sizeToken, Reason: "invalid size", cause: ErrInvalidSize}
	}

	v := &Vector{size: size, entries: newEntries()}
	for _, tok := range fields[:len(fields)-1] {
		idxPart, valPart, ok := strings.Cut(tok, "|")
		if !ok || strings.Contains(valPart, "|") {
			return nil, &ErrParse{Token: tok, Reason: "expected index|value"}
		}

		i, err := atoi(idxPart)
		if err != nil {
			return nil, &ErrParse{Token: tok, Reason: "invalid index", cause: err}
		}
		if i < 0 || i >= size {
			return nil, &ErrParse{Token: tok, Reason: "index out of range", cause: &ErrIndexOutOfRange{Index: i, Size: size}}
		}

		x, err := strconv.ParseFloat(valPart, 64)
		if err != nil {
			return nil, &ErrParse{Token: tok, Reason: "invalid value", cause: err}
		}

		if _, dup := v.entries.Set(i, x); dup {
			return nil, &ErrParse{Token: tok, Reason: "duplicate index"}
		}
	}
	v.prune()

	return v, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(s string) *Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// formatValue prints six decimals when that reads back exactly and the
// shortest exact representation otherwise.
func formatValue(x float64) string {
	s := strconv.FormatFloat(x, 'f', 6, 64)
	if back, err := strconv.ParseFloat(s, 64); err == nil && back == x {
		return s
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// atoi is strconv.Atoi without the leading '+' that Atoi tolerates; String
// never writes one, so such input would not round-trip.
func atoi(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		return 0, &strconv.NumError{Func: "Atoi", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.Atoi(s)
}
