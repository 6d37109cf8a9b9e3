package emit

import (
	"encoding/json"
	"fmt"
	"io"

	"dtc/tokens"
)

// jsonToken is the wire form of one resolved token.
type jsonToken struct {
	Mode      tokens.InheritMode `json:"mode"`
	Base      string             `json:"base,omitempty"`
	Chain     []string           `json:"chain,omitempty"`
	Circular  bool               `json:"circular,omitempty"`
	Delta     tokens.PropertyMap `json:"delta,omitempty"`
	Effective tokens.PropertyMap `json:"effective"`
}

// JSON writes the resolved dump: a map keyed by token id carrying each
// token's mode, base reference, chain and property sets. Map keys marshal
// sorted, so the dump is stable across runs.
func (e *Emitter) JSON(w io.Writer, results []*tokens.Resolved) error {
	doc := struct {
		Tokens map[string]jsonToken `json:"tokens"`
	}{Tokens: make(map[string]jsonToken, len(results))}

	for _, res := range results {
		doc.Tokens[res.ID] = jsonToken{
			Mode:      res.Mode,
			Base:      res.Base,
			Chain:     res.Chain,
			Circular:  res.Circular,
			Delta:     res.Delta,
			Effective: res.Effective,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resolved tokens: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
