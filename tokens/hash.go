package tokens

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// propertySignature produces a canonical string for a property map: keys
// sorted, values encoded with a type tag so "400" and 400 never collide.
// Identical maps always produce identical signatures, which is what makes
// hashes and cache keys deterministic.
func propertySignature(props PropertyMap) string {
	if len(props) == 0 {
		return ""
	}
	keys := props.Keys()
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(encodeValue(props[k]))
		sb.WriteByte(';')
	}
	return sb.String()
}

func encodeValue(v any) string {
	switch tv := v.(type) {
	case nil:
		return "n:"
	case string:
		return "s:" + tv
	case bool:
		return "b:" + strconv.FormatBool(tv)
	case int:
		return "i:" + strconv.FormatInt(int64(tv), 10)
	case int32:
		return "i:" + strconv.FormatInt(int64(tv), 10)
	case int64:
		return "i:" + strconv.FormatInt(tv, 10)
	case uint:
		return "i:" + strconv.FormatUint(uint64(tv), 10)
	case uint64:
		return "i:" + strconv.FormatUint(tv, 10)
	case float32:
		return "f:" + strconv.FormatFloat(float64(tv), 'g', -1, 64)
	case float64:
		return "f:" + strconv.FormatFloat(tv, 'g', -1, 64)
	case PropertyMap:
		return "m:{" + propertySignature(tv) + "}"
	case map[string]any:
		return "m:{" + propertySignature(PropertyMap(tv)) + "}"
	default:
		return fmt.Sprintf("?:%v", tv)
	}
}

// hashHierarchy folds every token's id, base, mode and property signature
// into one 64-bit content hash. Any definition change anywhere in the
// snapshot changes the hash and thereby retires all cache entries keyed on
// the old one.
func hashHierarchy(index map[string]*Token) uint64 {
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	// plain lexical sort is enough here, the hash only needs determinism
	sort.Strings(ids)

	d := xxhash.New()
	for _, id := range ids {
		t := index[id]
		_, _ = d.WriteString(id)
		_, _ = d.WriteString("|")
		_, _ = d.WriteString(t.Base)
		_, _ = d.WriteString("|")
		_, _ = d.WriteString(t.Mode.String())
		_, _ = d.WriteString("|")
		_, _ = d.WriteString(propertySignature(t.Props))
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}

// varsSignature fingerprints the current values of the named dynamic
// variables. Reference cache entries store it and revalidate against it on
// every hit, which is how changing a variable lazily invalidates exactly
// the entries that read it.
func varsSignature(names []string, rc *Context) uint64 {
	if len(names) == 0 {
		return 0
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	d := xxhash.New()
	for _, n := range sorted {
		v, ok := rc.Var(n)
		_, _ = d.WriteString(n)
		_, _ = d.WriteString("=")
		if ok {
			_, _ = d.WriteString(v)
		} else {
			_, _ = d.WriteString("\x00unset")
		}
		_, _ = d.WriteString(";")
	}
	return d.Sum64()
}

// contextVarsHash fingerprints the whole variable set of a context.
// Resolution cache keys include it so a variable change retires results
// computed under the old values. Tokens that read no variables recompute
// redundantly, which the concurrency model allows.
func contextVarsHash(vars map[string]string) uint64 {
	if len(vars) == 0 {
		return 0
	}
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)

	d := xxhash.New()
	for _, n := range names {
		_, _ = d.WriteString(n)
		_, _ = d.WriteString("=")
		_, _ = d.WriteString(vars[n])
		_, _ = d.WriteString(";")
	}
	return d.Sum64()
}
