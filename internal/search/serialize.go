package search

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Serialize renders every set field of p in its wire form. It performs no
// validation.
func Serialize(p Params) Raw {
	raw := Raw{}
	v := paramsValue(&p)
	for _, f := range fields {
		fv := v.Field(f.index)
		if fv.IsNil() {
			continue
		}
		e := fv.Elem()
		switch f.Kind {
		case KindEnum:
			raw[f.Name] = e.String()
		case KindNumber:
			raw[f.Name] = strconv.FormatFloat(e.Float(), 'f', -1, 64)
		case KindInteger:
			raw[f.Name] = strconv.FormatInt(e.Int(), 10)
		case KindFlag:
			if e.Bool() {
				raw[f.Name] = "true"
			}
		}
	}
	return raw
}

// Query returns raw as url.Values in schema order.
func (r Raw) Query() url.Values {
	q := url.Values{}
	for _, f := range fields {
		if s, ok := r[f.Name]; ok {
			q.Set(f.Name, s)
		}
	}
	return q
}

// Encode returns the query string for raw, keys sorted.
func (r Raw) Encode() string { return r.Query().Encode() }

// FromQuery flattens a query string. For repeated keys the last value wins.
func FromQuery(q url.Values) Raw {
	raw := make(Raw, len(q))
	for k, vs := range q {
		if len(vs) == 0 {
			continue
		}
		raw[k] = vs[len(vs)-1]
	}
	return raw
}

// FromArguments stringifies decoded JSON tool-call arguments. Arrays and
// objects are kept as their JSON text so they fail validation like any other
// bad value; nulls are treated as absent.
func FromArguments(args map[string]any) Raw {
	raw := make(Raw, len(args))
	for k, a := range args {
		switch v := a.(type) {
		case nil:
		case string:
			raw[k] = v
		case bool:
			raw[k] = strconv.FormatBool(v)
		case float64:
			raw[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			raw[k] = strconv.FormatFloat(float64(v), 'f', -1, 32)
		case int, int32, int64:
			raw[k] = fmt.Sprint(v)
		case fmt.Stringer:
			raw[k] = v.String()
		default:
			b, err := json.Marshal(v)
			if err != nil {
				b = []byte(fmt.Sprint(v))
			}
			raw[k] = string(b)
		}
	}
	return raw
}
