package tokens

import (
	"strings"

	"dtc/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable tree of the resolution result. It exists solely
// for manual inspection during debugging.
func (r *Resolved) String() string {
	if r == nil {
		return "<nil Resolved>"
	}
	return treeWriter{debug.NewTreeWriter()}.resolved(r).String()
}

func (tw treeWriter) resolved(r *Resolved) treeWriter {
	tw.Line(0, "Token %s", r.ID)
	tw.Scalar(1, "mode", r.Mode.String())
	if r.Base != "" {
		tw.Scalar(1, "base", r.Base)
	}
	if len(r.Chain) > 0 {
		tw.Line(1, "chain: %s", strings.Join(r.Chain, " > "))
	}
	if r.Circular {
		tw.Line(1, "circular")
	}
	if len(r.Delta) > 0 {
		tw.Line(1, "delta")
		tw.props(2, r.Delta)
	}
	if len(r.Effective) > 0 {
		tw.Line(1, "effective")
		tw.props(2, r.Effective)
	}
	return tw
}

func (tw treeWriter) props(depth int, props PropertyMap) {
	for _, k := range props.Keys() {
		switch v := props[k].(type) {
		case PropertyMap:
			tw.Line(depth, "%s", k)
			tw.props(depth+1, v)
		case map[string]any:
			tw.Line(depth, "%s", k)
			tw.props(depth+1, PropertyMap(v))
		default:
			tw.Scalar(depth, k, v)
		}
	}
}
