package extsvc

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Decoder turns raw JSON text into its top-level object. Implementations must return an
// error for syntactically invalid text and for any top-level value that is not an object.
type Decoder interface {
	DecodeObject(text string) (map[string]any, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(text string) (map[string]any, error)

func (f DecoderFunc) DecodeObject(text string) (map[string]any, error) { return f(text) }

// jsonDecoder is the default Decoder. Numbers are kept as json.Number and trailing
// content after the first value is rejected.
type jsonDecoder struct{}

func (jsonDecoder) DecodeObject(text string) (map[string]any, error) {
	v, err := jsonschema.UnmarshalJSON(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, want object", jsonKind(v))
	}
	return m, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}

// DefaultDecoder returns the Decoder used when none is configured.
func DefaultDecoder() Decoder { return jsonDecoder{} }
