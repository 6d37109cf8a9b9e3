package emit

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"dtc/tokens"
)

// CSS writes the resolved set as custom-property text: one :root block
// where every token contributes its complete effective properties as
// --<token>-<property> declarations. CSS has no analog of style
// inheritance between declarations, so even delta-mode tokens flatten to
// their effective set.
func (e *Emitter) CSS(w io.Writer, results []*tokens.Resolved) error {
	var b strings.Builder
	b.WriteString(":root {\n")

	first := true
	for _, res := range results {
		if len(res.Effective) == 0 {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&b, "  /* %s */\n", res.ID)
		writeCSSProps(&b, StyleID(res.ID), res.Effective)
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// writeCSSProps writes one declaration per property, flattening nested
// maps by joining path segments with dashes.
func writeCSSProps(b *strings.Builder, prefix string, props tokens.PropertyMap) {
	for _, k := range props.Keys() {
		v := props[k]
		name := prefix + "-" + cssName(k)
		switch nested := v.(type) {
		case tokens.PropertyMap:
			writeCSSProps(b, name, nested)
		case map[string]any:
			writeCSSProps(b, name, tokens.PropertyMap(nested))
		default:
			fmt.Fprintf(b, "  --%s: %s;\n", name, cssValue(v))
		}
	}
}

// cssValue renders a scalar for a declaration. Strings with spaces are
// quoted (font family names), everything else prints verbatim.
func cssValue(v any) string {
	if s, ok := v.(string); ok && strings.ContainsAny(s, " \t") {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}
