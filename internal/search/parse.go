package search

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Mode selects what happens to a search whose parameters do not all validate.
type Mode uint8

const (
	// Strict discards every filter when any field fails.
	Strict Mode = iota
	// Lenient drops only the failing fields.
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Strict, fmt.Errorf("search: unknown parse mode %q", s)
}

// ValidationError maps each failing parameter to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for n := range e.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + ": " + e.Fields[n]
	}
	return "invalid search params: " + strings.Join(parts, "; ")
}

var validate = validator.New()

// Validate coerces and checks every recognized key of raw. It returns the
// fields that passed and, if any failed, a *ValidationError.
func Validate(raw Raw) (Params, error) {
	var p Params
	v := paramsValue(&p)
	failed := map[string]string{}

	for _, f := range fields {
		s, ok := raw[f.Name]
		if !ok {
			continue
		}
		val, err := coerce(f, s, v.Field(f.index).Type())
		if err != nil {
			failed[f.Name] = err.Error()
			continue
		}
		v.Field(f.index).Set(val)
	}

	if err := validate.Struct(p); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return Params{}, err
		}
		for _, fe := range ves {
			i, ok := fieldByStruct[fe.StructField()]
			if !ok {
				continue
			}
			f := fields[i]
			failed[f.Name] = ruleMessage(f, fe)
			fv := v.Field(f.index)
			fv.Set(reflect.Zero(fv.Type()))
		}
	}

	if len(failed) > 0 {
		return p, &ValidationError{Fields: failed}
	}
	return p, nil
}

func coerce(f Field, s string, ptrType reflect.Type) (reflect.Value, error) {
	out := reflect.New(ptrType.Elem())
	elem := out.Elem()
	switch f.Kind {
	case KindEnum:
		elem.SetString(s)
	case KindNumber:
		n, err := parseNumber(s)
		if err != nil {
			return reflect.Value{}, err
		}
		elem.SetFloat(n)
	case KindInteger:
		n, err := parseNumber(s)
		if err != nil {
			return reflect.Value{}, err
		}
		if n != math.Trunc(n) {
			return reflect.Value{}, fmt.Errorf("expected integer, received %q", s)
		}
		if math.Abs(n) > maxExactInt || elem.OverflowInt(int64(n)) {
			return reflect.Value{}, fmt.Errorf("integer out of range: %q", s)
		}
		elem.SetInt(int64(n))
	case KindFlag:
		if s != "true" {
			return reflect.Value{}, fmt.Errorf(`expected "true", received %q`, s)
		}
		elem.SetBool(true)
	}
	return out, nil
}

// maxExactInt is the largest integer a float64 holds exactly (2^53).
const maxExactInt = 1 << 53

// parseNumber trims whitespace and treats blank input as zero.
func parseNumber(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("expected number, received %q", s)
	}
	return n, nil
}

func ruleMessage(f Field, fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of %s, received %q", strings.Join(f.Enum, ", "), fmt.Sprint(fe.Value()))
	case "gt":
		return "must be greater than " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	}
	return fe.Error()
}

// Parser applies a Mode to Validate. It never fails: invalid input degrades
// to fewer (in Strict mode, zero) filters and the failure is logged.
type Parser struct {
	Mode   Mode
	Logger zerolog.Logger
	// OnFailure, when set, is called for every failed validation.
	OnFailure func(*ValidationError)
}

func NewParser(mode Mode, l zerolog.Logger) *Parser {
	return &Parser{Mode: mode, Logger: l}
}

func (p *Parser) Parse(raw Raw) Params {
	params, err := Validate(raw)
	if err == nil {
		return params
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		p.Logger.Error().Err(err).Msg("search params validation error")
		return Params{}
	}
	if p.OnFailure != nil {
		p.OnFailure(verr)
	}

	ev := p.Logger.Warn().Str("mode", p.Mode.String())
	for name, msg := range verr.Fields {
		ev = ev.Str("param."+name, msg)
	}
	if p.Mode == Lenient {
		ev.Int("kept", params.Len()).Msg("search params parsing failed, dropping invalid filters")
		return params
	}
	ev.Msg("search params parsing failed, ignoring all filters")
	return Params{}
}

// ParseArguments normalizes tool-call arguments by stringifying them and
// parsing the result, so they pass the same checks as a query string.
func (p *Parser) ParseArguments(args map[string]any) Params {
	return p.Parse(FromArguments(args))
}

// Parse validates raw in Strict mode, logging through the global logger.
func Parse(raw Raw) Params {
	return NewParser(Strict, log.Logger).Parse(raw)
}
