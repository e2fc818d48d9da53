package search

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindEnum Kind = iota + 1
	KindNumber
	KindInteger
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindFlag:
		return "flag"
	}
	return "unknown"
}

// Field describes one recognized search parameter. Bounds are nil when the
// field has none.
type Field struct {
	Name             string
	Kind             Kind
	Description      string
	Enum             []string
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64

	index int
}

var (
	fields        = deriveFields(reflect.TypeOf(Params{}))
	fieldByStruct = indexByStructName(reflect.TypeOf(Params{}))
)

// Fields returns the search schema in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Enum = slices.Clone(f.Enum)
		out[i] = f
	}
	return out
}

// Lookup returns the field with the given wire name.
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// oneof params are space separated; single quotes group values with spaces.
var oneofSplit = regexp.MustCompile(`'[^']*'|\S+`)

func deriveFields(t reflect.Type) []Field {
	var out []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := sf.Tag.Get("param")
		if name == "" {
			continue
		}
		if sf.Type.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("search: field %s must be a pointer", sf.Name))
		}
		f := Field{Name: name, Description: sf.Tag.Get("desc"), index: i}
		switch sf.Type.Elem().Kind() {
		case reflect.String:
			f.Kind = KindEnum
		case reflect.Float64:
			f.Kind = KindNumber
		case reflect.Int, reflect.Int64:
			f.Kind = KindInteger
		case reflect.Bool:
			f.Kind = KindFlag
		default:
			panic(fmt.Sprintf("search: unsupported type %s for %s", sf.Type, sf.Name))
		}
		for _, rule := range strings.Split(sf.Tag.Get("validate"), ",") {
			key, param, _ := strings.Cut(rule, "=")
			switch key {
			case "oneof":
				for _, v := range oneofSplit.FindAllString(param, -1) {
					f.Enum = append(f.Enum, strings.Trim(v, "'"))
				}
			case "gt":
				f.ExclusiveMinimum = mustBound(sf.Name, param)
			case "min", "gte":
				f.Minimum = mustBound(sf.Name, param)
			case "max", "lte":
				f.Maximum = mustBound(sf.Name, param)
			}
		}
		if f.Kind == KindEnum && len(f.Enum) == 0 {
			panic(fmt.Sprintf("search: enum field %s has no oneof rule", sf.Name))
		}
		out = append(out, f)
	}
	return out
}

func indexByStructName(t reflect.Type) map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[t.Field(f.index).Name] = i
	}
	return m
}

func mustBound(field, s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("search: bad bound %q on %s", s, field))
	}
	return &v
}

func paramsValue(p *Params) reflect.Value { return reflect.ValueOf(p).Elem() }
