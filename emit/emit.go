// Package emit renders resolved tokens into target documents.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"dtc/common"
	"dtc/emu"
	"dtc/tokens"
)

// Emitter renders a resolved token set into one of the supported target
// formats. Results are rendered in the order given, so callers decide the
// document order once.
type Emitter struct {
	reg  *tokens.Registry
	conv *emu.Converter
	log  *zap.Logger
}

func NewEmitter(reg *tokens.Registry, conv *emu.Converter, log *zap.Logger) *Emitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Emitter{reg: reg, conv: conv, log: log.Named("emit")}
}

// Emit renders results into w for the given target format.
func (e *Emitter) Emit(w io.Writer, target common.TargetFmt, results []*tokens.Resolved) error {
	switch target {
	case common.TargetFmtOoxml:
		return e.OOXML(w, results)
	case common.TargetFmtCss:
		return e.CSS(w, results)
	case common.TargetFmtJson:
		return e.JSON(w, results)
	default:
		return fmt.Errorf("unsupported target format %s", target)
	}
}

// StyleID converts a token or base style id into an identifier safe for
// style references in every target ("heading.1" -> "heading-1",
// "Normal" -> "normal"). Both style declarations and references go through
// here, so targets stay internally consistent.
func StyleID(id string) string {
	return slug.Make(id)
}

// cssName converts a camelCase property name to its css form
// ("fontSize" -> "font-size").
func cssName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
