// Both the configuration layer and the emitters need to talk about output
// targets, and neither should import the other for it. Keeping the shared
// enums in their own package breaks that dependency knot.
package common

import (
	yaml "gopkg.in/yaml.v3"
)

// Specification of requested output target.
// ENUM(ooxml, css, json)
type TargetFmt int

// Inline reports whether the target embeds complete property sets rather
// than inheritance references.
func (t TargetFmt) Inline() bool {
	return t == TargetFmtCss
}

func (t TargetFmt) Ext() string {
	switch t {
	case TargetFmtOoxml:
		return ".xml"
	case TargetFmtCss:
		return ".css"
	case TargetFmtJson:
		return ".json"
	default:
		// this should never happen
		panic("unsupported target requested")
	}
}

// yaml.v3 does not consult encoding.TextUnmarshaler, so configuration
// fields of this type need explicit yaml support.
func (t TargetFmt) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (t *TargetFmt) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTargetFmt(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
