package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Len(t, c.Products, 8)
	assert.Len(t, c.FAQ, 6)
	assert.Len(t, c.Available(), 8)

	p, ok := c.Product(1)
	require.True(t, ok)
	assert.Equal(t, "Бизнес-консультация", p.Name)
	assert.Equal(t, int64(5000), p.Price)

	_, ok = c.Product(999)
	assert.False(t, ok)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`
products:
  - {id: 10, name: "A", price: 100, category: "X", available: true}
  - {id: 11, name: "B", price: 200, category: "Y", available: false}
  - {id: 12, name: "C", price: 300, category: "X", available: true}
faq:
  - {question: "Q?", answer: "A."}
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, c.Available(), 2)

	cats := c.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "X", cats[0].Name)
	assert.Len(t, cats[0].Products, 2)
	assert.Equal(t, "Y", cats[1].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`products: [{id: 1, name: "A"}, {id: 1, name: "B"}]`))
	assert.ErrorContains(t, err, "duplicate product id 1")

	_, err = Parse([]byte(`products: [{id: 1, name: ""}]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`products: [{id: 1, name: "A", price: -5}]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`faq: [{question: "Q"}]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`products: {`))
	assert.Error(t, err)
}
