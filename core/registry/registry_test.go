// core/registry/registry_test.go
package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableEntry(t *testing.T) {
	tbl := Table{"PKS_KS": {Type: "KS", Length: 421, Bitscore: 241.1}}

	e, err := tbl.Entry("PKS_KS")
	require.NoError(t, err)
	assert.Equal(t, "KS", e.Type)
	assert.Equal(t, 421, e.Length)
}

func TestTableEntryNotFound(t *testing.T) {
	tbl := Table{}

	_, err := tbl.Entry("PKS_AT")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "PKS_AT")
}

func TestTableHas(t *testing.T) {
	tbl := Table{"Condensation": {Type: "C", Length: 455, Bitscore: 190.8}}
	assert.True(t, tbl.Has("Condensation"))
	assert.False(t, tbl.Has("Thioesterase"))
}
