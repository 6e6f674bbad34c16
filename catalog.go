package extsvc

import (
	"fmt"
	"slices"
	"sync"
)

// ParameterSet is an immutable set of parameter names.
type ParameterSet struct {
	names map[string]struct{}
}

func newParameterSet(names []string) ParameterSet {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return ParameterSet{names: m}
}

// Contains reports whether name is in the set. Comparison is exact.
func (s ParameterSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set.
func (s ParameterSet) Len() int { return len(s.names) }

// Names returns the members sorted ascending. The slice is a fresh copy.
func (s ParameterSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Difference returns the sorted, de-duplicated members of keys that are not in s.
func (s ParameterSet) Difference(keys []string) []string {
	var out []string
	for _, k := range keys {
		if !s.Contains(k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Catalog maps every Service to its allowed ParameterSet and published schema.
// A Catalog is never mutated after construction and is safe for concurrent use.
type Catalog struct {
	allowed [numServices]ParameterSet
	schemas [numServices]map[string]any
}

// Allowed returns the parameter whitelist for svc. It is total over declared services;
// an undeclared value yields an empty set.
func (c *Catalog) Allowed(svc Service) ParameterSet {
	if !svc.Valid() {
		return ParameterSet{}
	}
	return c.allowed[svc]
}

// Schema returns a deep copy of the JSON Schema describing svc's update payload,
// or nil for an undeclared value.
func (c *Catalog) Schema(svc Service) map[string]any {
	if !svc.Valid() {
		return nil
	}
	return cloneSchema(c.schemas[svc])
}

// NewCatalog builds a Catalog from explicit parameter names. Every declared service
// must be present with at least one name.
func NewCatalog(defs map[Service][]string) (*Catalog, error) {
	c := &Catalog{}
	for _, svc := range Services() {
		names, ok := defs[svc]
		if !ok {
			return nil, fmt.Errorf("catalog: missing definition for service %s", svc)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("catalog: empty parameter set for service %s", svc)
		}
		c.allowed[svc] = newParameterSet(names)
		c.schemas[svc] = schemaForNames(svc, c.allowed[svc].Names())
	}
	for svc := range defs {
		if !svc.Valid() {
			return nil, fmt.Errorf("catalog: undeclared service %s", svc)
		}
	}
	return c, nil
}

func buildDefaultCatalog() (*Catalog, error) {
	c := &Catalog{}
	for _, svc := range Services() {
		def := paramDefinitions[svc]
		if def == nil {
			return nil, fmt.Errorf("catalog: missing parameter definition for service %s", svc)
		}
		schemaMap, names, err := reflectParams(def)
		if err != nil {
			return nil, fmt.Errorf("catalog: reflect %s parameters: %w", svc, err)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("catalog: empty parameter set for service %s", svc)
		}
		schemaMap["title"] = fmt.Sprintf("%s configuration", svc)
		c.allowed[svc] = newParameterSet(names)
		c.schemas[svc] = schemaMap
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := buildDefaultCatalog()
	if err != nil {
		panic("extsvc: " + err.Error())
	}
	return c
})

// DefaultCatalog returns the process-wide catalog built from the parameter structs.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}
