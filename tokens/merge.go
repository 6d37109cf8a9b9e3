package tokens

import "sort"

// Provenance records, per property, the name of the layer that supplied the
// winning value.
type Provenance map[string]string

// MergeProperties folds the per-layer property maps for one token into a
// single map. Layers must already be ordered from lowest to highest
// precedence; a later layer wins every property it defines. The function is
// pure: inputs are never mutated and the result shares no memory with them.
func MergeProperties(tokenID string, layers []Layer) (PropertyMap, Provenance) {
	merged := make(PropertyMap)
	prov := make(Provenance)
	for _, layer := range layers {
		lt, ok := layer.Tokens[tokenID]
		if !ok {
			continue
		}
		for k, v := range lt.Props {
			merged[k] = cloneValue(v)
			prov[k] = layer.Name
		}
	}
	return merged, prov
}

// MergeToken builds the effective pre-resolution token for one id. Base and
// inheritance mode come from the highest-precedence layer that sets them;
// auto is the unset default and never overrides an explicit mode from a
// lower layer. Properties merge per MergeProperties. Returns nil when no
// layer defines the id.
func MergeToken(tokenID string, layers []Layer) (*Token, Provenance) {
	found := false
	tok := &Token{ID: tokenID, Mode: InheritModeAuto}
	for _, layer := range layers {
		lt, ok := layer.Tokens[tokenID]
		if !ok {
			continue
		}
		found = true
		if lt.Base != "" {
			tok.Base = lt.Base
		}
		if lt.Mode != InheritModeAuto && lt.Mode.IsValid() {
			tok.Mode = lt.Mode
		}
	}
	if !found {
		return nil, nil
	}
	props, prov := MergeProperties(tokenID, layers)
	tok.Props = props
	return tok, prov
}

// MergeHierarchy merges every token defined in any layer, returning the
// flattened pre-resolution hierarchy keyed by token id, plus per-token
// provenance.
func MergeHierarchy(layers []Layer) (map[string]*Token, map[string]Provenance) {
	ids := make(map[string]struct{})
	for _, layer := range layers {
		for id := range layer.Tokens {
			ids[id] = struct{}{}
		}
	}

	toks := make(map[string]*Token, len(ids))
	provs := make(map[string]Provenance, len(ids))
	for id := range ids {
		tok, prov := MergeToken(id, layers)
		if tok == nil {
			continue
		}
		toks[id] = tok
		provs[id] = prov
	}
	return toks, provs
}

// MergedVars folds per-layer variable defaults into one map. Layers must
// already be ordered from lowest to highest precedence; a later layer wins
// every variable it sets.
func MergedVars(layers []Layer) map[string]string {
	vars := make(map[string]string)
	for _, layer := range layers {
		for name, value := range layer.Vars {
			vars[name] = value
		}
	}
	return vars
}

// SortLayers orders layers by canonical precedence rank, lowest first.
// Layers whose names carry no canonical rank keep their relative input
// order and sort after ranked ones, so site-specific layer names still
// merge deterministically.
func SortLayers(layers []Layer) []Layer {
	out := make([]Layer, len(layers))
	copy(out, layers)
	sort.SliceStable(out, func(i, j int) bool {
		return layerRank(out[i].Name) < layerRank(out[j].Name)
	})
	return out
}

func layerRank(name string) int {
	if k, ok := CanonicalRank(name); ok {
		return int(k)
	}
	return int(LayerKindExtension) + 1
}
