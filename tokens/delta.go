package tokens

import "dtc/emu"

// ComputeDelta returns the properties of derived that differ from base,
// including properties base does not have at all. Dimension-valued strings
// compare by EMU within the default tolerance, so "12pt" against "16px" is
// no difference. Nested maps diff recursively; a nested map with no
// differences is omitted entirely. The result shares no memory with either
// input. An empty result means derived adds nothing over base.
func ComputeDelta(conv *emu.Converter, base, derived PropertyMap) PropertyMap {
	return deltaAgainst(conv, nil, base, derived)
}

// DeltaFromBase diffs derived against a catalog style's defaults. The
// style's precomputed EMU map stands in for parsing base-side dimensions.
func DeltaFromBase(conv *emu.Converter, st BaseStyle, derived PropertyMap) PropertyMap {
	return deltaAgainst(conv, st.EMU, st.Defaults, derived)
}

// deltaAgainst is the shared diff walk. baseEMU, when non-nil, maps
// top-level keys of base to the EMU value its string already parses to.
func deltaAgainst(conv *emu.Converter, baseEMU map[string]int64, base, derived PropertyMap) PropertyMap {
	delta := make(PropertyMap)
	for k, dv := range derived {
		bv, inBase := base[k]
		if !inBase {
			delta[k] = cloneValue(dv)
			continue
		}

		dm, dIsMap := asPropertyMap(dv)
		bm, bIsMap := asPropertyMap(bv)
		if dIsMap && bIsMap {
			sub := deltaAgainst(conv, nil, bm, dm)
			if len(sub) > 0 {
				delta[k] = sub
			}
			continue
		}

		if be, hinted := baseEMU[k]; hinted {
			if ds, isStr := dv.(string); isStr {
				if de, err := conv.ParseEMU(ds); err == nil {
					if !emu.WithinTolerance(be, de, emu.DefaultTolerance) {
						delta[k] = cloneValue(dv)
					}
					continue
				}
			}
		}
		if equivalentValue(conv, bv, dv) {
			continue
		}
		delta[k] = cloneValue(dv)
	}
	return delta
}

// ApplyDelta overlays delta onto base, merging nested maps key by key.
// Inverse of ComputeDelta up to dimension tolerance.
func ApplyDelta(base, delta PropertyMap) PropertyMap {
	out := base.Clone()
	for k, dv := range delta {
		dm, dIsMap := asPropertyMap(dv)
		bm, bIsMap := asPropertyMap(out[k])
		if dIsMap && bIsMap {
			out[k] = ApplyDelta(bm, dm)
			continue
		}
		out[k] = cloneValue(dv)
	}
	return out
}

// equivalentValue reports whether two scalar values are the same for delta
// purposes. Strings that both parse as dimensions compare in EMU space,
// everything else falls back to plain value equality.
func equivalentValue(conv *emu.Converter, a, b any) bool {
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		ae, aerr := conv.ParseEMU(as)
		be, berr := conv.ParseEMU(bs)
		if aerr == nil && berr == nil {
			return emu.WithinTolerance(ae, be, emu.DefaultTolerance)
		}
	}
	return valueEqual(a, b)
}
