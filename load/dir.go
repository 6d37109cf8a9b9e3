package load

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"dtc/tokens"
)

// Set is everything loaded from one layers directory: layers ordered from
// lowest to highest precedence and their merged variable defaults.
type Set struct {
	Layers []tokens.Layer
	Vars   map[string]string
}

// LoadFile reads one layer document from path.
func LoadFile(path string, log *zap.Logger) (tokens.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tokens.Layer{}, fmt.Errorf("failed to read layer file: %w", err)
	}
	layer, err := Parse(data, log)
	if err != nil {
		return tokens.Layer{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return layer, nil
}

// LoadDir loads every *.yaml and *.yml file in dir. Files are visited in
// natural name order, then canonical layer ranks decide final precedence, so
// number-prefixed file names only order layers the ranks do not.
func LoadDir(dir string, log *zap.Logger) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read layers directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		default:
			log.Debug("Skipping file, not recognized as layer document", zap.String("file", e.Name()))
		}
	}
	sort.Sort(natural.StringSlice(names))

	layers := make([]tokens.Layer, 0, len(names))
	sources := make(map[string]string, len(names))
	for _, name := range names {
		layer, err := LoadFile(filepath.Join(dir, name), log)
		if err != nil {
			return nil, err
		}
		if prev, dup := sources[layer.Name]; dup {
			return nil, fmt.Errorf("layer %q defined in both %s and %s", layer.Name, prev, name)
		}
		sources[layer.Name] = name
		layers = append(layers, layer)
		log.Debug("Loaded layer",
			zap.String("file", name),
			zap.String("layer", layer.Name),
			zap.Int("tokens", len(layer.Tokens)))
	}

	ordered := tokens.SortLayers(layers)
	return &Set{Layers: ordered, Vars: tokens.MergedVars(ordered)}, nil
}
