package tokens

// How a token relates to its base. Closed set, switch exhaustively.
// ENUM(auto, delta, manual-override, complete)
type InheritMode int

// IsTerminal reports whether the mode short-circuits inheritance: the token
// is emitted self-contained and its base reference is ignored.
func (m InheritMode) IsTerminal() bool {
	return m == InheritModeManualOverride || m == InheritModeComplete
}

// Canonical precedence layers, lowest to highest. The integer value is the
// precedence rank.
// ENUM(core, fork, organization, group, personal, channel, extension)
type LayerKind int

// Style categories of the base style catalog.
// ENUM(paragraph, character, table, numbering)
type StyleCategory int

// What ValidateHierarchy can report.
// ENUM(missing-base, circular-chain, empty-delta, chain-too-deep, malformed-pattern)
type IssueKind int

// CanonicalRank maps a layer name to its canonical precedence rank. Unknown
// names report false and sort after all canonical layers in supplied order.
func CanonicalRank(name string) (LayerKind, bool) {
	k, err := ParseLayerKind(name)
	if err != nil {
		return LayerKind(0), false
	}
	return k, true
}
