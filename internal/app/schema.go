package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"rental_agency/internal/search"
)

var argumentsSchema = sync.OnceValues(search.CompileSchema)

// checkArguments logs tool-call arguments that do not match the exported
// schema. It never rejects them: the parser decides what is kept.
func checkArguments(source string, args map[string]any) {
	sch, err := argumentsSchema()
	if err != nil {
		log.Error().Err(err).Msg("search schema compile failed")
		return
	}
	if err := sch.Validate(toJSONValue(args)); err != nil {
		log.Warn().Str("source", source).Err(err).Msg("tool arguments do not match search schema")
	}
}

// toJSONValue widens Go integers to float64, the type encoding/json decodes
// numbers into, so the schema checker accepts them.
func toJSONValue(args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		switch n := v.(type) {
		case int:
			out[k] = float64(n)
		case int32:
			out[k] = float64(n)
		case int64:
			out[k] = float64(n)
		case float32:
			out[k] = float64(n)
		default:
			out[k] = v
		}
	}
	return out
}
