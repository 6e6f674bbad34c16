package extsvc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
)

var errNilSchema = errors.New("schema reflection returned nil")

// reflectParams produces the JSON Schema map for a parameter struct and the ordered list
// of its property names. It is called once per service when the default catalog is built.
func reflectParams(def any) (map[string]any, []string, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	schema := r.Reflect(def)
	if schema == nil {
		return nil, nil, errNilSchema
	}
	var names []string
	if schema.Properties != nil {
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			names = append(names, pair.Key)
		}
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, nil, err
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return nil, nil, err
	}
	applyClosedObject(schemaMap)
	stripSchemaIDs(schemaMap)
	return schemaMap, names, nil
}

// schemaForNames builds the schema of a catalog defined by bare parameter names.
func schemaForNames(svc Service, names []string) map[string]any {
	props := make(map[string]any, len(names))
	for _, n := range names {
		props[n] = map[string]any{}
	}
	schemaMap := map[string]any{
		"$schema":    jsonschema.Version,
		"title":      fmt.Sprintf("%s configuration", svc),
		"type":       "object",
		"properties": props,
	}
	applyClosedObject(schemaMap)
	return schemaMap
}

// applyClosedObject forbids properties outside the whitelist and drops required lists:
// an update payload may carry any subset of the parameters.
func applyClosedObject(schemaMap map[string]any) {
	schemaMap["additionalProperties"] = false
	delete(schemaMap, "required")
}

// stripSchemaIDs removes id and $id so published schemas do not depend on Go package paths.
func stripSchemaIDs(schemaMap map[string]any) {
	delete(schemaMap, "id")
	delete(schemaMap, "$id")
}

// cloneSchema deep copies a schema map through JSON so callers cannot mutate catalog state.
func cloneSchema(schemaMap map[string]any) map[string]any {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
