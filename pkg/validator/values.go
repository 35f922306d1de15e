package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// formatNumber renders f in its shortest decimal form: 0, 2.5, -10.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// number is a numeric record value. Finite values are held exactly; NaN and the
// infinities only as a float.
type number struct {
	exact *big.Rat
	float float64
}

// toNumber converts Go numeric kinds and json.Number. Strings are not numbers.
func toNumber(v any) (number, bool) {
	switch n := v.(type) {
	case json.Number:
		return parseNumber(n.String())
	case bool, string, nil:
		return number{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		return number{exact: new(big.Rat).SetInt64(i), float: float64(i)}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return number{exact: new(big.Rat).SetInt(new(big.Int).SetUint64(u)), float: float64(u)}, true
	case reflect.Float32, reflect.Float64:
		return floatNumber(rv.Float()), true
	}
	return number{}, false
}

// parseNumber reads decimal text such as 9007199254740993, -2.5 or 1e3. Whole numbers are
// kept without rounding; fractions and text outside the float64 range become floats.
func parseNumber(s string) (number, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return floatNumber(f), true
		}
		return number{}, false
	}
	if strings.ContainsAny(s, "/xXpP_") {
		return floatNumber(f), true
	}
	if r, ok := new(big.Rat).SetString(s); ok && r.IsInt() {
		return number{exact: r, float: f}, true
	}
	return floatNumber(f), true
}

func floatNumber(f float64) number {
	n := number{float: f}
	if !math.IsInf(f, 0) && !math.IsNaN(f) {
		n.exact = new(big.Rat).SetFloat64(f)
	}
	return n
}

func (n number) integral() bool {
	return n.exact != nil && n.exact.IsInt()
}

func (n number) odd() bool {
	return n.integral() && n.exact.Num().Bit(0) == 1
}

func (n number) even() bool {
	return n.integral() && n.exact.Num().Bit(0) == 0
}

// cmp compares n with m. The boolean is false when either side is NaN.
func (n number) cmp(m number) (int, bool) {
	if n.exact != nil && m.exact != nil {
		return n.exact.Cmp(m.exact), true
	}
	switch {
	case math.IsNaN(n.float) || math.IsNaN(m.float):
		return 0, false
	case n.float < m.float:
		return -1, true
	case n.float > m.float:
		return 1, true
	}
	return 0, true
}

// String renders n in its shortest decimal form: 0, 2.5, -10, 9007199254740993.
func (n number) String() string {
	if n.integral() {
		return n.exact.Num().String()
	}
	return formatNumber(n.float)
}

// equalValues compares record values with configured members. Numbers compare by value
// across kinds so that 1 matches 1.0 decoded from JSON.
func equalValues(a, b any) bool {
	na, aok := toNumber(a)
	nb, bok := toNumber(b)
	if aok && bok {
		c, ok := na.cmp(nb)
		return ok && c == 0
	}
	return reflect.DeepEqual(a, b)
}

func contains(members []any, v any) bool {
	for _, m := range members {
		if equalValues(m, v) {
			return true
		}
	}
	return false
}

func dedupe(values []any) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		if !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// joinValues renders members joined by ", " in their configured order.
func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

// stringValue returns v as a string when its kind is string.
func stringValue(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// measure returns the length of v: characters for strings, elements for collections.
func measure(v any) (int, bool) {
	if s, ok := stringValue(v); ok {
		return utf8.RuneCountInString(norm.NFC.String(s)), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}
