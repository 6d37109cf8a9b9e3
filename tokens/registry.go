package tokens

import (
	"sync"

	"go.uber.org/zap"

	"dtc/emu"
)

// BaseStyle is a built-in, non-inheriting foundation style rooting
// inheritance chains.
type BaseStyle struct {
	ID       string
	Category StyleCategory
	Defaults PropertyMap
	// EMU holds the precomputed EMU form of every dimension-valued default.
	// DeltaFromBase reads it instead of re-parsing the base side.
	EMU map[string]int64
}

// Clone returns a deep copy, keeping registry internals unreachable from
// callers.
func (s BaseStyle) Clone() BaseStyle {
	out := s
	out.Defaults = s.Defaults.Clone()
	if s.EMU != nil {
		out.EMU = make(map[string]int64, len(s.EMU))
		for k, v := range s.EMU {
			out.EMU[k] = v
		}
	}
	return out
}

// Registry holds the base style catalog. It is read-mostly: seeded at
// construction, occasionally extended, then shared by every resolution
// worker. Lookups return copies.
type Registry struct {
	mu     sync.RWMutex
	styles map[string]BaseStyle
	order  []string
	conv   *emu.Converter
	log    *zap.Logger
}

// NewRegistry creates a registry seeded with the built-in catalog: the root
// paragraph style, the root character style, three heading levels and a
// title style. The converter is used to precompute EMU values for catalog
// dimensions.
func NewRegistry(conv *emu.Converter, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	if conv == nil {
		conv = emu.NewConverter(0, emu.Dimension{}, log)
	}
	r := &Registry{
		styles: make(map[string]BaseStyle),
		conv:   conv,
		log:    log.Named("registry"),
	}
	for _, st := range builtinCatalog() {
		r.Register(st)
	}
	return r
}

// Register adds a style to the catalog, precomputing its EMU map. A
// duplicate id overwrites the existing entry and logs, it never rejects.
func (r *Registry) Register(st BaseStyle) {
	st = st.Clone()
	st.EMU = r.precomputeEMU(st.Defaults)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.styles[st.ID]; exists {
		r.log.Info("Overwriting base style", zap.String("id", st.ID))
	} else {
		r.order = append(r.order, st.ID)
	}
	r.styles[st.ID] = st
}

// Get returns a copy of the style with the given id.
func (r *Registry) Get(id string) (BaseStyle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.styles[id]
	if !ok {
		return BaseStyle{}, false
	}
	return st.Clone(), true
}

// Has reports whether a style with the given id exists.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[id]
	return ok
}

// List returns catalog styles in registration order, optionally filtered by
// category.
func (r *Registry) List(categories ...StyleCategory) []BaseStyle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]BaseStyle, 0, len(r.order))
	for _, id := range r.order {
		st := r.styles[id]
		if len(categories) > 0 && !containsCategory(categories, st.Category) {
			continue
		}
		out = append(out, st.Clone())
	}
	return out
}

// Len is the number of registered styles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.styles)
}

func (r *Registry) precomputeEMU(props PropertyMap) map[string]int64 {
	var out map[string]int64
	for k, v := range props {
		s, ok := v.(string)
		if !ok {
			continue
		}
		ev, err := r.conv.ParseEMU(s)
		if err != nil {
			continue
		}
		if out == nil {
			out = make(map[string]int64)
		}
		out[k] = ev
	}
	return out
}

func containsCategory(cats []StyleCategory, c StyleCategory) bool {
	for _, cat := range cats {
		if cat == c {
			return true
		}
	}
	return false
}

// builtinCatalog is the fixed seed every registry starts from. Values
// mirror common word-processing defaults.
func builtinCatalog() []BaseStyle {
	return []BaseStyle{
		{
			ID:       "Normal",
			Category: StyleCategoryParagraph,
			Defaults: PropertyMap{
				"fontFamily": "Calibri",
				"fontSize":   "11pt",
				"fontWeight": 400,
			},
		},
		{
			ID:       "DefaultParagraphFont",
			Category: StyleCategoryCharacter,
			Defaults: PropertyMap{},
		},
		{
			ID:       "Heading1",
			Category: StyleCategoryParagraph,
			Defaults: PropertyMap{
				"fontFamily": "Calibri Light",
				"fontSize":   "16pt",
				"fontWeight": 700,
				"color":      "#2F5496",
			},
		},
		{
			ID:       "Heading2",
			Category: StyleCategoryParagraph,
			Defaults: PropertyMap{
				"fontFamily": "Calibri Light",
				"fontSize":   "14pt",
				"fontWeight": 700,
				"color":      "#2F5496",
			},
		},
		{
			ID:       "Heading3",
			Category: StyleCategoryParagraph,
			Defaults: PropertyMap{
				"fontFamily": "Calibri Light",
				"fontSize":   "12pt",
				"fontWeight": 700,
				"color":      "#1F3864",
			},
		},
		{
			ID:       "Title",
			Category: StyleCategoryParagraph,
			Defaults: PropertyMap{
				"fontFamily": "Calibri Light",
				"fontSize":   "28pt",
				"fontWeight": 400,
			},
		},
	}
}
