package emit

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"

	"dtc/emu"
	"dtc/tokens"
)

func emitOOXML(t *testing.T, e *Emitter, results []*tokens.Resolved) *etree.Document {
	t.Helper()

	var buf bytes.Buffer
	if err := e.OOXML(&buf, results); err != nil {
		t.Fatalf("OOXML() error = %v", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buf.Bytes()); err != nil {
		t.Fatalf("parse styles part: %v", err)
	}
	return doc
}

func findStyle(t *testing.T, doc *etree.Document, styleID string) *etree.Element {
	t.Helper()
	st := doc.FindElement("//w:style[@w:styleId='" + styleID + "']")
	if st == nil {
		t.Fatalf("style %q not found", styleID)
	}
	return st
}

func TestOOXML(t *testing.T) {
	e := testEmitter(t)
	doc := emitOOXML(t, e, []*tokens.Resolved{bodyResolved(), quoteResolved()})

	root := doc.Root()
	if root == nil || root.FullTag() != "w:styles" {
		t.Fatalf("root = %v, want w:styles", root)
	}
	if got := root.SelectAttrValue("xmlns:w", ""); got != wordMLNamespace {
		t.Errorf("xmlns:w = %q, want %q", got, wordMLNamespace)
	}

	// Six catalog styles plus the two resolved tokens.
	if got := len(doc.FindElements("//w:style")); got != 8 {
		t.Errorf("style count = %d, want 8", got)
	}

	normal := findStyle(t, doc, "normal")
	if got := normal.SelectAttrValue("w:type", ""); got != "paragraph" {
		t.Errorf("Normal w:type = %q, want paragraph", got)
	}
	name := normal.FindElement("w:name")
	if name == nil || name.SelectAttrValue("w:val", "") != "Normal" {
		t.Errorf("Normal w:name = %v, want Normal", name)
	}
	if sz := normal.FindElement("w:rPr/w:sz"); sz == nil || sz.SelectAttrValue("w:val", "") != "22" {
		t.Errorf("Normal w:sz = %v, want 22", sz)
	}

	dpf := findStyle(t, doc, "defaultparagraphfont")
	if got := dpf.SelectAttrValue("w:type", ""); got != "character" {
		t.Errorf("DefaultParagraphFont w:type = %q, want character", got)
	}

	body := findStyle(t, doc, "body")
	if body.FindElement("w:basedOn") != nil {
		t.Error("complete-mode style carries w:basedOn")
	}
	sp := body.FindElement("w:pPr/w:spacing")
	if sp == nil {
		t.Fatal("body has no w:spacing")
	}
	if got := sp.SelectAttrValue("w:line", ""); got != "276" {
		t.Errorf("body w:line = %q, want 276", got)
	}
	if got := sp.SelectAttrValue("w:lineRule", ""); got != "auto" {
		t.Errorf("body w:lineRule = %q, want auto", got)
	}
	fonts := body.FindElement("w:rPr/w:rFonts")
	if fonts == nil || fonts.SelectAttrValue("w:ascii", "") != "Calibri" {
		t.Errorf("body w:rFonts = %v, want ascii Calibri", fonts)
	}
	if body.FindElement("w:rPr/w:b") != nil {
		t.Error("complete-mode weight 400 should not emit w:b")
	}

	quote := findStyle(t, doc, "quote")
	basedOn := quote.FindElement("w:basedOn")
	if basedOn == nil || basedOn.SelectAttrValue("w:val", "") != "body" {
		t.Errorf("quote w:basedOn = %v, want body", basedOn)
	}
	ind := quote.FindElement("w:pPr/w:ind")
	if ind == nil || ind.SelectAttrValue("w:left", "") != "720" {
		t.Errorf("quote w:ind = %v, want left 720", ind)
	}
	if quote.FindElement("w:rPr/w:i") == nil {
		t.Error("quote should emit w:i")
	}
	// Delta mode writes only the delta, inherited size stays with the base.
	if quote.FindElement("w:rPr/w:sz") != nil {
		t.Error("delta-mode style repeats inherited w:sz")
	}
}

func TestOOXML_ParagraphFormatting(t *testing.T) {
	e := testEmitter(t)
	doc := emitOOXML(t, e, []*tokens.Resolved{{
		ID:   "display",
		Mode: tokens.InheritModeComplete,
		Effective: tokens.PropertyMap{
			"marginTop":    "12pt",
			"marginBottom": "6pt",
			"textIndent":   "0.5in",
			"textAlign":    "justify",
			"color":        "#aabbcc",
			"fontWeight":   700,
			"fontStyle":    "italic",
			"fontSize":     "14px",
		},
		Chain: []string{"Normal", "display"},
	}})

	st := findStyle(t, doc, "display")
	sp := st.FindElement("w:pPr/w:spacing")
	if sp == nil {
		t.Fatal("no w:spacing")
	}
	if got := sp.SelectAttrValue("w:before", ""); got != "240" {
		t.Errorf("w:before = %q, want 240", got)
	}
	if got := sp.SelectAttrValue("w:after", ""); got != "120" {
		t.Errorf("w:after = %q, want 120", got)
	}
	ind := st.FindElement("w:pPr/w:ind")
	if ind == nil || ind.SelectAttrValue("w:firstLine", "") != "720" {
		t.Errorf("w:ind = %v, want firstLine 720", ind)
	}
	jc := st.FindElement("w:pPr/w:jc")
	if jc == nil || jc.SelectAttrValue("w:val", "") != "both" {
		t.Errorf("w:jc = %v, want both", jc)
	}
	color := st.FindElement("w:rPr/w:color")
	if color == nil || color.SelectAttrValue("w:val", "") != "AABBCC" {
		t.Errorf("w:color = %v, want AABBCC", color)
	}
	if st.FindElement("w:rPr/w:b") == nil {
		t.Error("weight 700 should emit w:b")
	}
	if st.FindElement("w:rPr/w:i") == nil {
		t.Error("italic should emit w:i")
	}
	sz := st.FindElement("w:rPr/w:sz")
	if sz == nil || sz.SelectAttrValue("w:val", "") != "21" {
		t.Errorf("w:sz = %v, want 21 (14px at 96dpi)", sz)
	}
}

func TestOOXML_DeltaCancelsBold(t *testing.T) {
	e := testEmitter(t)
	doc := emitOOXML(t, e, []*tokens.Resolved{{
		ID:        "plain",
		Base:      "heading",
		Mode:      tokens.InheritModeDelta,
		Delta:     tokens.PropertyMap{"fontWeight": "normal"},
		Effective: tokens.PropertyMap{"fontWeight": "normal"},
		Chain:     []string{"Heading1", "heading", "plain"},
	}})

	st := findStyle(t, doc, "plain")
	b := st.FindElement("w:rPr/w:b")
	if b == nil || b.SelectAttrValue("w:val", "") != "0" {
		t.Errorf("w:b = %v, want explicit off toggle", b)
	}
}

func TestOOXML_CharacterChain(t *testing.T) {
	e := testEmitter(t)
	doc := emitOOXML(t, e, []*tokens.Resolved{{
		ID:        "emphasis",
		Mode:      tokens.InheritModeComplete,
		Effective: tokens.PropertyMap{"fontStyle": "italic"},
		Chain:     []string{"DefaultParagraphFont", "emphasis"},
	}})

	st := findStyle(t, doc, "emphasis")
	if got := st.SelectAttrValue("w:type", ""); got != "character" {
		t.Errorf("w:type = %q, want character", got)
	}
}

func TestOOXML_SkipsUnmappedProperties(t *testing.T) {
	e := testEmitter(t)
	doc := emitOOXML(t, e, []*tokens.Resolved{{
		ID:   "boxed",
		Mode: tokens.InheritModeComplete,
		Effective: tokens.PropertyMap{
			"border":  tokens.PropertyMap{"width": "1pt", "style": "solid"},
			"opacity": 0.5,
		},
		Chain: []string{"Normal", "boxed"},
	}})

	st := findStyle(t, doc, "boxed")
	if st.FindElement("w:pPr") != nil || st.FindElement("w:rPr") != nil {
		t.Error("unmapped properties should produce no formatting blocks")
	}
}

func TestEmuToTwips(t *testing.T) {
	tests := []struct {
		v    int64
		want int64
	}{
		{0, 0},
		{emu.PerPoint, 20},
		{6350, 10},
		{457200, 720},
		{-emu.PerPoint, -20},
	}
	for _, tt := range tests {
		if got := emuToTwips(tt.v); got != tt.want {
			t.Errorf("emuToTwips(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestEmuToHalfPoints(t *testing.T) {
	tests := []struct {
		v    int64
		want int64
	}{
		{0, 0},
		{emu.PerPoint, 2},
		{139700, 22},
		{6350, 1},
	}
	for _, tt := range tests {
		if got := emuToHalfPoints(tt.v); got != tt.want {
			t.Errorf("emuToHalfPoints(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestBoldWeight(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{700, true},
		{600, true},
		{599, false},
		{400, false},
		{700.0, true},
		{"bold", true},
		{"bolder", true},
		{"normal", false},
		{"700", true},
		{nil, false},
	}
	for _, tt := range tests {
		if got := boldWeight(tt.v); got != tt.want {
			t.Errorf("boldWeight(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		v    any
		want string
		ok   bool
	}{
		{"#2F5496", "2F5496", true},
		{"2f5496", "2F5496", true},
		{"#abc", "AABBCC", true},
		{"#12345", "", false},
		{"red", "", false},
		{"#GGHHII", "", false},
		{42, "", false},
	}
	for _, tt := range tests {
		got, ok := hexColor(tt.v)
		if got != tt.want || ok != tt.ok {
			t.Errorf("hexColor(%v) = %q, %v, want %q, %v", tt.v, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAlignValue(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{"left", "left"},
		{"center", "center"},
		{"right", "right"},
		{"justify", "both"},
		{"start", ""},
	}
	for _, tt := range tests {
		if got := alignValue(tt.v); got != tt.want {
			t.Errorf("alignValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestDimensionOf(t *testing.T) {
	tests := []struct {
		v       any
		want    emu.Dimension
		wantErr bool
	}{
		{"12pt", emu.Dimension{Value: 12, Unit: emu.UnitPt}, false},
		{2, emu.Dimension{Value: 2, Unit: emu.UnitUnitless}, false},
		{1.5, emu.Dimension{Value: 1.5, Unit: emu.UnitUnitless}, false},
		{true, emu.Dimension{}, true},
	}
	for _, tt := range tests {
		got, err := dimensionOf(tt.v)
		if (err != nil) != tt.wantErr {
			t.Errorf("dimensionOf(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("dimensionOf(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
