package extsvc

import (
	"log/slog"
	"slices"
	"strings"
)

// ConfigValidator is the contract of the configuration-update gate. *Validator implements it;
// middlewares wrap it.
type ConfigValidator interface {
	// ValidateForUpdate returns nil when every top-level key of json is allowed for serviceName.
	ValidateForUpdate(json, serviceName string) error
	// ExtractTopLevelKeys returns the sorted top-level keys of json without any whitelist check.
	ExtractTopLevelKeys(json string) ([]string, error)
}

// Validator checks update payloads against a Catalog. It holds no mutable state and is
// safe for concurrent use.
type Validator struct {
	catalog *Catalog
	decoder Decoder
	logger  *slog.Logger
}

// NewValidator creates a Validator with the given options.
func NewValidator(opts ...Option) *Validator {
	var o validatorOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		o.catalog = DefaultCatalog()
	}
	if o.decoder == nil {
		o.decoder = DefaultDecoder()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Validator{
		catalog: o.catalog,
		decoder: o.decoder,
		logger:  o.logger,
	}
}

// Catalog returns the catalog the Validator checks against.
func (v *Validator) Catalog() *Catalog { return v.catalog }

// ValidateForUpdate checks in order: blank text, service name, JSON syntax, whitelist.
// The first failing step decides the error; a document with both allowed and
// unsupported keys is rejected as a whole, listing every unsupported key.
func (v *Validator) ValidateForUpdate(json, serviceName string) error {
	_, err := v.validate(json, serviceName)
	return err
}

// ValidateAndExtract runs ValidateForUpdate and, on success, returns the sorted keys
// the payload supplies.
func (v *Validator) ValidateAndExtract(json, serviceName string) ([]string, error) {
	return v.validate(json, serviceName)
}

// ExtractTopLevelKeys decodes json and returns its top-level keys, sorted. Nested objects
// are not flattened.
func (v *Validator) ExtractTopLevelKeys(json string) ([]string, error) {
	if isBlank(json) {
		return nil, malformedInput("json is blank", nil)
	}
	doc, err := v.decoder.DecodeObject(json)
	if err != nil {
		return nil, malformedInput("json parse error", err)
	}
	return sortedKeys(doc), nil
}

func (v *Validator) validate(json, serviceName string) ([]string, error) {
	if isBlank(json) {
		return nil, v.reject(serviceName, malformedInput("json is blank", nil))
	}
	svc, ok := ParseService(serviceName)
	if !ok {
		return nil, v.reject(serviceName, unknownService(serviceName))
	}
	doc, err := v.decoder.DecodeObject(json)
	if err != nil {
		return nil, v.reject(serviceName, malformedInput("json parse error", err))
	}
	keys := sortedKeys(doc)
	if unsupported := v.catalog.Allowed(svc).Difference(keys); len(unsupported) > 0 {
		return nil, v.reject(serviceName, unsupportedParameters(svc, unsupported))
	}
	return keys, nil
}

func (v *Validator) reject(serviceName string, err error) error {
	attrs := []any{"service", serviceName, "kind", KindOf(err).String()}
	if params := UnsupportedParameters(err); len(params) > 0 {
		attrs = append(attrs, "parameters", params)
	}
	v.logger.Debug("configuration rejected", attrs...)
	return err
}

// isBlank is checked before decoding: decoders disagree on how empty input is classified.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func sortedKeys(doc map[string]any) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var _ ConfigValidator = (*Validator)(nil)
