package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_Load(t *testing.T) {
	logger := zerolog.Nop()
	loader := NewFileLoader(logger)
	ctx := context.Background()

	t.Run("Parses a JSON seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "foods.json")
		content := `[
			{"foodName": "Pad Thai", "category": "Noodles", "price": 10.25, "qty": 35, "user_email": "kitchen@example.com"},
			{"foodName": "Beef Pho", "category": "Soup", "price": 13.00, "qty": 20, "user_email": "kitchen@example.com"}
		]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		items, err := loader.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Pad Thai", items[0].Name)
		assert.Equal(t, 13.00, items[1].Price)
		assert.Equal(t, "kitchen@example.com", items[0].OwnerEmail)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		items, err := loader.Load(ctx, filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
		assert.Nil(t, items)
	})

	t.Run("Malformed JSON is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		items, err := loader.Load(ctx, path)
		assert.Error(t, err)
		assert.Nil(t, items)
	})
}
