package domain

import (
	"sort"
	"strconv"
	"sync"
)

// Kind identifies a concrete or abstract entity variant. Values are the stable
// integer tags from the Barrelman catalog.
type Kind int32

var (
	kindIndexOnce sync.Once
	kindByName    map[string]Kind
)

// String returns the catalog name for the kind, or a numeric form for tags
// that are not part of the catalog.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.FormatInt(int64(k), 10) + ")"
}

// Valid reports whether the tag is a known, non-Unknown catalog kind.
func (k Kind) Valid() bool {
	if k == KindUnknown {
		return false
	}
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a catalog name to its kind tag.
func ParseKind(name string) (Kind, error) {
	kindIndexOnce.Do(func() {
		kindByName = make(map[string]Kind, len(kindNames))
		for k, n := range kindNames {
			kindByName[n] = k
		}
	})
	k, ok := kindByName[name]
	if !ok || k == KindUnknown {
		return KindUnknown, UnknownKindError{Name: name}
	}
	return k, nil
}

// CatalogKinds returns every catalog kind except Unknown in ascending tag order.
func CatalogKinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		if k == KindUnknown {
			continue
		}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
