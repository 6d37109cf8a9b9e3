package emit

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"dtc/emu"
	"dtc/tokens"
)

const wordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// OOXML writes a WordprocessingML styles part: every catalog base style as a
// self-contained w:style, then one w:style per resolved token. Delta-mode
// tokens reference their base through w:basedOn and carry only their own
// overrides, complete-mode tokens carry the full effective set.
func (e *Emitter) OOXML(w io.Writer, results []*tokens.Resolved) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	styles := doc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", wordMLNamespace)

	// Catalog first, so every w:basedOn target is declared before its users.
	for _, st := range e.reg.List() {
		e.writeBaseStyle(styles, st)
	}
	for _, res := range results {
		e.writeTokenStyle(styles, res)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write styles part: %w", err)
	}
	return nil
}

func (e *Emitter) writeBaseStyle(parent *etree.Element, st tokens.BaseStyle) {
	style := parent.CreateElement("w:style")
	style.CreateAttr("w:type", styleType(st.Category))
	style.CreateAttr("w:styleId", StyleID(st.ID))
	style.CreateElement("w:name").CreateAttr("w:val", st.ID)
	e.writeProperties(style, st.ID, st.Defaults, false)
}

func (e *Emitter) writeTokenStyle(parent *etree.Element, res *tokens.Resolved) {
	style := parent.CreateElement("w:style")
	style.CreateAttr("w:type", e.styleTypeOf(res))
	style.CreateAttr("w:styleId", StyleID(res.ID))
	style.CreateElement("w:name").CreateAttr("w:val", res.ID)

	props := res.Effective
	delta := res.Mode == tokens.InheritModeDelta && res.Base != ""
	if delta {
		style.CreateElement("w:basedOn").CreateAttr("w:val", StyleID(res.Base))
		props = res.Delta
	}
	e.writeProperties(style, res.ID, props, delta)
}

// styleTypeOf picks the w:type from the base style rooting the token's
// chain. Chains that never reach the catalog stay paragraph styles.
func (e *Emitter) styleTypeOf(res *tokens.Resolved) string {
	if len(res.Chain) > 0 {
		if st, ok := e.reg.Get(res.Chain[0]); ok {
			return styleType(st.Category)
		}
	}
	return styleType(tokens.StyleCategoryParagraph)
}

func styleType(c tokens.StyleCategory) string {
	switch c {
	case tokens.StyleCategoryCharacter:
		return "character"
	case tokens.StyleCategoryTable:
		return "table"
	case tokens.StyleCategoryNumbering:
		return "numbering"
	default:
		return "paragraph"
	}
}

// runProps collects run-level formatting before serialization, so the rPr
// children always come out in schema order no matter how properties were
// authored.
type runProps struct {
	font    string
	bold    bool
	boldSet bool
	ital    bool
	italSet bool
	color   string
	szHalf  string
}

func (rp *runProps) empty() bool {
	return rp.font == "" && !rp.boldSet && !rp.italSet && rp.color == "" && rp.szHalf == ""
}

// writeProperties maps authored properties onto w:pPr / w:rPr children.
// Spacing and indentation aggregate several properties onto one element, so
// everything is collected before any element is created. In delta mode an
// authored "normal" weight or style is an override and gets an explicit off
// toggle; in complete mode off states are simply omitted.
func (e *Emitter) writeProperties(style *etree.Element, id string, props tokens.PropertyMap, delta bool) {
	var (
		spacing = map[string]string{}
		indent  = map[string]string{}
		align   string
		rp      runProps
	)

	for _, k := range props.Keys() {
		v := props[k]
		switch k {
		case "marginTop":
			if tw, ok := e.twips(id, k, v); ok {
				spacing["w:before"] = tw
			}
		case "marginBottom":
			if tw, ok := e.twips(id, k, v); ok {
				spacing["w:after"] = tw
			}
		case "lineHeight":
			e.lineSpacing(spacing, id, v)
		case "marginLeft":
			if tw, ok := e.twips(id, k, v); ok {
				indent["w:left"] = tw
			}
		case "marginRight":
			if tw, ok := e.twips(id, k, v); ok {
				indent["w:right"] = tw
			}
		case "textIndent":
			if tw, ok := e.twips(id, k, v); ok {
				indent["w:firstLine"] = tw
			}
		case "textAlign":
			align = alignValue(v)
			if align == "" {
				e.skip(id, k, v)
			}
		case "fontFamily":
			rp.font = fmt.Sprintf("%v", v)
		case "fontSize":
			if hp, ok := e.halfPoints(id, k, v); ok {
				rp.szHalf = hp
			}
		case "fontWeight":
			rp.bold = boldWeight(v)
			rp.boldSet = true
		case "fontStyle":
			switch fmt.Sprintf("%v", v) {
			case "italic", "oblique":
				rp.ital = true
				rp.italSet = true
			case "normal":
				rp.ital = false
				rp.italSet = true
			default:
				e.skip(id, k, v)
			}
		case "color":
			if hex, ok := hexColor(v); ok {
				rp.color = hex
			} else {
				e.skip(id, k, v)
			}
		default:
			e.log.Debug("Property has no WordprocessingML mapping, skipping",
				zap.String("token", id), zap.String("property", k))
		}
	}

	if len(spacing) > 0 || len(indent) > 0 || align != "" {
		pPr := style.CreateElement("w:pPr")
		if len(spacing) > 0 {
			el := pPr.CreateElement("w:spacing")
			for _, a := range []string{"w:before", "w:after", "w:line", "w:lineRule"} {
				if v, ok := spacing[a]; ok {
					el.CreateAttr(a, v)
				}
			}
		}
		if len(indent) > 0 {
			el := pPr.CreateElement("w:ind")
			for _, a := range []string{"w:left", "w:right", "w:firstLine"} {
				if v, ok := indent[a]; ok {
					el.CreateAttr(a, v)
				}
			}
		}
		if align != "" {
			pPr.CreateElement("w:jc").CreateAttr("w:val", align)
		}
	}

	if rp.empty() {
		return
	}
	rPr := style.CreateElement("w:rPr")
	if rp.font != "" {
		f := rPr.CreateElement("w:rFonts")
		f.CreateAttr("w:ascii", rp.font)
		f.CreateAttr("w:hAnsi", rp.font)
	}
	if rp.boldSet {
		if rp.bold {
			rPr.CreateElement("w:b")
		} else if delta {
			rPr.CreateElement("w:b").CreateAttr("w:val", "0")
		}
	}
	if rp.italSet {
		if rp.ital {
			rPr.CreateElement("w:i")
		} else if delta {
			rPr.CreateElement("w:i").CreateAttr("w:val", "0")
		}
	}
	if rp.color != "" {
		rPr.CreateElement("w:color").CreateAttr("w:val", rp.color)
	}
	if rp.szHalf != "" {
		rPr.CreateElement("w:sz").CreateAttr("w:val", rp.szHalf)
	}
	// A run block whose only content was an omitted off state ends up empty.
	if len(rPr.ChildElements()) == 0 {
		style.RemoveChild(rPr)
	}
}

// lineSpacing fills w:line / w:lineRule: a unitless line height is a
// multiple of the line (240ths), a dimension becomes an exact height.
func (e *Emitter) lineSpacing(spacing map[string]string, id string, v any) {
	d, err := dimensionOf(v)
	if err != nil {
		e.skip(id, "lineHeight", v)
		return
	}
	if d.Unit == emu.UnitUnitless {
		spacing["w:line"] = strconv.FormatInt(int64(math.Round(d.Value*240)), 10)
		spacing["w:lineRule"] = "auto"
		return
	}
	ev, err := e.conv.ToEMU(d)
	if err != nil {
		e.skip(id, "lineHeight", v)
		return
	}
	spacing["w:line"] = strconv.FormatInt(emuToTwips(ev), 10)
	spacing["w:lineRule"] = "exact"
}

func (e *Emitter) twips(id, key string, v any) (string, bool) {
	d, err := dimensionOf(v)
	if err == nil {
		var ev int64
		if ev, err = e.conv.ToEMU(d); err == nil {
			return strconv.FormatInt(emuToTwips(ev), 10), true
		}
	}
	e.log.Debug("Skipping property, value does not convert",
		zap.String("token", id), zap.String("property", key), zap.Error(err))
	return "", false
}

func (e *Emitter) halfPoints(id, key string, v any) (string, bool) {
	d, err := dimensionOf(v)
	if err == nil {
		var ev int64
		if ev, err = e.conv.ToEMU(d); err == nil {
			return strconv.FormatInt(emuToHalfPoints(ev), 10), true
		}
	}
	e.log.Debug("Skipping property, value does not convert",
		zap.String("token", id), zap.String("property", key), zap.Error(err))
	return "", false
}

func (e *Emitter) skip(id, key string, v any) {
	e.log.Debug("Skipping property, value not representable",
		zap.String("token", id), zap.String("property", key), zap.Any("value", v))
}

// dimensionOf widens an authored property value into a dimension: strings
// are parsed, bare numbers are unitless ratios.
func dimensionOf(v any) (emu.Dimension, error) {
	switch x := v.(type) {
	case string:
		return emu.Parse(x)
	case int:
		return emu.Dimension{Value: float64(x), Unit: emu.UnitUnitless}, nil
	case int64:
		return emu.Dimension{Value: float64(x), Unit: emu.UnitUnitless}, nil
	case float64:
		return emu.Dimension{Value: x, Unit: emu.UnitUnitless}, nil
	}
	return emu.Dimension{}, fmt.Errorf("value %v is not a dimension", v)
}

// emuToTwips rounds an EMU value to twentieths of a point, the unit of
// w:spacing and w:ind attributes.
func emuToTwips(v int64) int64 {
	return int64(math.Round(float64(v) * 20.0 / float64(emu.PerPoint)))
}

// emuToHalfPoints rounds an EMU value to half-points, the unit of w:sz.
func emuToHalfPoints(v int64) int64 {
	return int64(math.Round(float64(v) * 2.0 / float64(emu.PerPoint)))
}

// boldWeight reports whether a fontWeight value selects a bold face:
// numeric weights of 600 and up, or the keyword forms.
func boldWeight(v any) bool {
	switch x := v.(type) {
	case string:
		if x == "bold" || x == "bolder" {
			return true
		}
		if n, err := strconv.Atoi(x); err == nil {
			return n >= 600
		}
	case int:
		return x >= 600
	case int64:
		return x >= 600
	case float64:
		return x >= 600
	}
	return false
}

// hexColor normalizes an authored color to the uppercase six-digit form
// w:color wants, without the leading hash. Three-digit shorthand expands.
func hexColor(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isDigit := c >= '0' && c <= '9'
		isHex := (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isDigit && !isHex {
			return "", false
		}
	}
	return strings.ToUpper(s), true
}

// alignValue maps a textAlign keyword to w:jc. Unknown keywords map to the
// empty string and are skipped.
func alignValue(v any) string {
	switch fmt.Sprintf("%v", v) {
	case "left":
		return "left"
	case "center":
		return "center"
	case "right":
		return "right"
	case "justify":
		return "both"
	}
	return ""
}
