package catalogRepository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDataset(t *testing.T) {
	log := logrus.New()

	t.Run("loads rows regardless of column order", func(t *testing.T) {
		products, err := LoadDataset(filepath.Join("testdata", "products.csv"), log)
		require.NoError(t, err)

		// Rows with a malformed rating or a fractional price are skipped,
		// not fatal and never truncated.
		require.Len(t, products, 3)
		assert.Equal(t, "P1", products[0].ID)
		assert.Equal(t, "Samsung Galaxy M14", products[0].Name)
		assert.Equal(t, 13999, products[0].Price)
		assert.Equal(t, 4.2, products[0].Rating)
		assert.Equal(t, "Kitchen", products[2].Category)
		for _, p := range products {
			assert.NotEqual(t, "P5", p.ID)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset(filepath.Join("testdata", "nope.csv"), log)
		assert.Error(t, err)
	})

	t.Run("missing required column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		content := "product_id,product_name,price\nP1,Thing,100\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := LoadDataset(path, log)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "category")
	})
}
