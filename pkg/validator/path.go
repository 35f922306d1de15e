package validator

import (
	"reflect"
	"strconv"
	"strings"
)

// Record is the attribute-bearing value being validated.
type Record = map[string]any

// Path addresses a field of a record. A single key and a one-element path are the same
// address; longer paths descend into nested maps and slices key by key.
type Path []string

// Key returns the path of a top-level attribute.
func Key(key string) Path {
	return Path{key}
}

// P returns a path built from the given keys.
func P(keys ...string) Path {
	return Path(keys)
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`)

// String joins the keys with "." and is the key used in a Report. A "." or "\" inside a
// key is escaped with "\", so Key("a.b") renders as `a\.b` and stays distinct from
// P("a", "b").
func (p Path) String() string {
	keys := make([]string, len(p))
	for i, key := range p {
		keys[i] = keyEscaper.Replace(key)
	}
	return strings.Join(keys, ".")
}

// Join returns a new path with the keys of next appended to p.
func (p Path) Join(next Path) Path {
	out := make(Path, 0, len(p)+len(next))
	out = append(out, p...)
	return append(out, next...)
}

// Lookup resolves path against v. The boolean is false when the value is absent: a key is
// missing, a level holds nil or cannot be traversed, or an index is out of range.
// Lookup never mutates v.
func Lookup(v any, path Path) (any, bool) {
	cur := v
	for _, key := range path {
		next, ok := lookupKey(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	if isNil(cur) {
		return nil, false
	}
	return cur, true
}

func lookupKey(v any, key string) (any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := m[key]
		return val, ok && !isNil(val)
	case map[any]any:
		if val, ok := m[key]; ok {
			return val, !isNil(val)
		}
		if i, err := strconv.Atoi(key); err == nil {
			val, ok := m[i]
			return val, ok && !isNil(val)
		}
		return nil, false
	case []any:
		i, ok := index(key, len(m))
		if !ok {
			return nil, false
		}
		return m[i], !isNil(m[i])
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, false
		}
		return lookupKey(rv.Elem().Interface(), key)
	case reflect.Map:
		kv, ok := mapKey(key, rv.Type().Key())
		if !ok {
			return nil, false
		}
		val := rv.MapIndex(kv)
		if !val.IsValid() {
			return nil, false
		}
		out := val.Interface()
		return out, !isNil(out)
	case reflect.Slice, reflect.Array:
		i, ok := index(key, rv.Len())
		if !ok {
			return nil, false
		}
		out := rv.Index(i).Interface()
		return out, !isNil(out)
	}
	return nil, false
}

// subRecord views v as a record using the traversal rules of Lookup: string-keyed maps
// of any type, maps with integer keys and slices (keyed by index). The boolean is false
// when v has no keys to offer.
func subRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(Record, len(m))
		for k, val := range m {
			switch key := k.(type) {
			case string:
				out[key] = val
			case int:
				if _, taken := m[strconv.Itoa(key)]; !taken {
					out[strconv.Itoa(key)] = val
				}
			}
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, false
		}
		return subRecord(rv.Elem().Interface())
	case reflect.Map:
		out := make(Record, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if key, ok := keyString(iter.Key()); ok {
				out[key] = iter.Value().Interface()
			}
		}
		return out, true
	case reflect.Slice, reflect.Array:
		out := make(Record, rv.Len())
		for i := range rv.Len() {
			out[strconv.Itoa(i)] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// keyString renders a typed map key the way a path key addresses it.
func keyString(k reflect.Value) (string, bool) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() || k.Elem().Kind() != reflect.String {
			return "", false
		}
		return k.Elem().String(), true
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), true
	}
	return "", false
}

// mapKey converts a path key into a value usable with a map of key type t.
func mapKey(key string, t reflect.Type) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		kv := reflect.New(t).Elem()
		if kv.OverflowInt(n) {
			return reflect.Value{}, false
		}
		kv.SetInt(n)
		return kv, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		kv := reflect.New(t).Elem()
		if kv.OverflowUint(n) {
			return reflect.Value{}, false
		}
		kv.SetUint(n)
		return kv, true
	case reflect.Interface:
		kv := reflect.ValueOf(key)
		if !kv.Type().AssignableTo(t) {
			return reflect.Value{}, false
		}
		return kv, true
	}
	return reflect.Value{}, false
}

func index(key string, length int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// isNil reports whether v is nil or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
