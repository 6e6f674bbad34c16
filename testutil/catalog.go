package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skosovsky/extsvc"
)

// NewTestCatalog returns a Catalog where every service allows names, with overrides
// replacing the set for individual services. It fails the test on invalid input.
func NewTestCatalog(t testing.TB, names []string, overrides map[extsvc.Service][]string) *extsvc.Catalog {
	t.Helper()
	defs := make(map[extsvc.Service][]string, len(extsvc.Services()))
	for _, svc := range extsvc.Services() {
		defs[svc] = names
	}
	for svc, o := range overrides {
		defs[svc] = o
	}
	c, err := extsvc.NewCatalog(defs)
	require.NoError(t, err)
	return c
}
