package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakerKnownMethod(t *testing.T) {
	g, err := NewFakerGenerator("name", "first_name", 1)
	require.NoError(t, err)

	records := g.GenerateData(10)
	require.Len(t, records, 10)
	for _, r := range records {
		v, ok := r.Get("response")
		assert.True(t, ok)
		assert.NotEmpty(t, v)
	}
}

func TestFakerUnknownMethod(t *testing.T) {
	_, err := NewFakerGenerator("name", "shoe_size", 0)
	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "name", provErr.Provider)
	assert.Equal(t, "shoe_size", provErr.Method)
	assert.Contains(t, err.Error(), "name.shoe_size")
}

func TestFakerSeededReproducibility(t *testing.T) {
	a, err := NewFakerGenerator("internet", "email", 1234)
	require.NoError(t, err)
	b, err := NewFakerGenerator("internet", "email", 1234)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		va, _ := a.GenerateRecord().Get("response")
		vb, _ := b.GenerateRecord().Get("response")
		assert.Equal(t, va, vb)
	}
}

func TestFakerMethodsListed(t *testing.T) {
	names := FakerMethods()
	assert.Contains(t, names, "name.name")
	assert.Contains(t, names, "address.city")
	assert.Contains(t, names, "text.sentence")
}
