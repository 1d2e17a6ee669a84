package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ValueKind tags the dynamic type carried by a Value.
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindMap
)

// Value is a tagged dynamically-typed value used by the schema-less maps on
// artifacts (document metadata, element properties, style guides). It
// serializes to plain JSON so stored artifacts stay readable by external
// tooling.
type Value struct {
	kind ValueKind
	str  string
	num  json.Number
	b    bool
	list []Value
	m    Map
}

// Map is a schema-less string-keyed mapping of tagged values.
type Map map[string]Value

func StringValue(v string) Value { return Value{kind: KindString, str: v} }
func BoolValue(v bool) Value     { return Value{kind: KindBool, b: v} }
func ListValue(v ...Value) Value { return Value{kind: KindList, list: v} }
func MapValue(v Map) Value       { return Value{kind: KindMap, m: v} }

// NumberValue builds a numeric value from a float64.
func NumberValue(v float64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatFloat(v, 'g', -1, 64))}
}

// IntValue builds a numeric value that keeps the integer exact, including
// magnitudes a float64 cannot represent.
func IntValue(v int64) Value {
	return Value{kind: KindNumber, num: json.Number(strconv.FormatInt(v, 10))}
}

// Kind returns the tag identifying which accessor is meaningful.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string payload and whether the value holds one.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric payload as a float64 and whether the value
// holds a number. Use AsInt when the caller needs exact integers.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	parsed, err := v.num.Float64()
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// AsInt returns the numeric payload as an exact int64 and whether the value
// holds an integral number.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	parsed, err := v.num.Int64()
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// AsBool returns the boolean payload and whether the value holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsList returns the list payload and whether the value holds one.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsMap returns the nested map payload and whether the value holds one.
func (v Value) AsMap() (Map, bool) { return v.m, v.kind == KindMap }

// String renders the value for logs and tables; lists and maps are rendered
// as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	default:
		data, err := v.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("<unrenderable %d>", v.kind)
		}
		return string(data)
	}
}

// MarshalJSON renders the value as the natural JSON for its kind.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		// The decoded literal is emitted untouched so integers beyond
		// float64 precision survive a store round trip.
		return []byte(v.num.String()), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	default:
		return nil, fmt.Errorf("value: unknown kind %d", v.kind)
	}
}

// UnmarshalJSON tags the value from the JSON token type.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	decoded, err := fromAny(raw)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func fromAny(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Value{}, nil
	case string:
		return StringValue(typed), nil
	case bool:
		return BoolValue(typed), nil
	case json.Number:
		return Value{kind: KindNumber, num: typed}, nil
	case []any:
		list := make([]Value, 0, len(typed))
		for _, entry := range typed {
			converted, err := fromAny(entry)
			if err != nil {
				return Value{}, err
			}
			list = append(list, converted)
		}
		return Value{kind: KindList, list: list}, nil
	case map[string]any:
		m := make(Map, len(typed))
		for key, entry := range typed {
			converted, err := fromAny(entry)
			if err != nil {
				return Value{}, err
			}
			m[key] = converted
		}
		return MapValue(m), nil
	default:
		return Value{}, fmt.Errorf("value: unsupported type %T", raw)
	}
}

// SortedKeys returns the map's keys in lexical order for deterministic
// rendering.
func (m Map) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
