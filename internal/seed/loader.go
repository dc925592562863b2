package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"restaurant-api/internal/model"
)

// Loader loads a menu seed from a source location. The location is a file
// path for the file loader and an object key for the S3 loader.
type Loader interface {
	Load(ctx context.Context, location string) ([]model.FoodRequest, error)
}

// fileLoader implements Loader for reading seed files from the local
// filesystem.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON seed file containing an array of menu items.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.FoodRequest, error) {
	l.logger.Info().Str("file", filePath).Msg("loading menu seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	items, err := decodeSeed(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(items)).
		Msg("menu seed file loaded")

	return items, nil
}

// decodeSeed parses a JSON array of menu items.
func decodeSeed(r io.Reader) ([]model.FoodRequest, error) {
	var items []model.FoodRequest
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}
