// Package load reads layer documents and turns them into merge input.
package load

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"dtc/common"
	"dtc/tokens"
)

// Layer document schema. Parsing is strict: a misspelled field or token id is
// an authoring mistake and is very hard to notice downstream once several
// layers merged over it.

type layerDoc struct {
	Name   string              `yaml:"name"`
	Vars   map[string]string   `yaml:"vars"`
	Tokens map[string]tokenDef `yaml:"tokens"`
}

type tokenDef struct {
	Base  string         `yaml:"base"`
	Mode  string         `yaml:"mode"`
	Props map[string]any `yaml:"props"`
}

// Parse decodes a single layer document. Token ids and base references are
// normalized and authored inheritance modes are checked against the known
// set before anything reaches the merger.
func Parse(data []byte, log *zap.Logger) (tokens.Layer, error) {
	var doc layerDoc

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return tokens.Layer{}, fmt.Errorf("failed to decode layer document: %w", err)
	}
	if doc.Name == "" {
		return tokens.Layer{}, fmt.Errorf("layer document has no name")
	}
	if _, ok := tokens.CanonicalRank(doc.Name); !ok {
		log.Debug("Layer name has no canonical rank, will sort after ranked layers", zap.String("layer", doc.Name))
	}

	layer := tokens.Layer{
		Name:   doc.Name,
		Tokens: make(map[string]tokens.LayerToken, len(doc.Tokens)),
		Vars:   doc.Vars,
	}
	for id, def := range doc.Tokens {
		nid, err := common.NormalizeTokenID(id)
		if err != nil {
			return tokens.Layer{}, fmt.Errorf("layer %q token %q: %w", doc.Name, id, err)
		}
		if _, dup := layer.Tokens[nid]; dup {
			return tokens.Layer{}, fmt.Errorf("layer %q defines token %q twice after normalization", doc.Name, nid)
		}

		lt := tokens.LayerToken{Props: tokens.PropertyMap(def.Props)}
		if def.Base != "" {
			if lt.Base, err = common.NormalizeTokenID(def.Base); err != nil {
				return tokens.Layer{}, fmt.Errorf("layer %q token %q base: %w", doc.Name, nid, err)
			}
		}
		if def.Mode != "" {
			mode, err := tokens.ParseInheritMode(def.Mode)
			if err != nil {
				return tokens.Layer{}, fmt.Errorf("layer %q token %q: %w", doc.Name, nid, err)
			}
			lt.Mode = mode
		}
		layer.Tokens[nid] = lt
	}
	return layer, nil
}
