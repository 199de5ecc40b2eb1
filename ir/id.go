package ir

import (
	"cmp"
	"hash/maphash"
)

// Id is an annotated identifier used as a struct key.
//
// Id is comparable and may be used directly as a Go map key; two Ids are
// equal when both the identifier and the metadata match exactly. An Id with
// no metadata never equals one with metadata, even empty metadata.
type Id struct {
	ident    string
	metadata string
	hasMeta  bool
}

func NewId(ident string) Id {
	return Id{ident: ident}
}

func NewIdWithMetadata(ident, metadata string) Id {
	return Id{ident: ident, metadata: metadata, hasMeta: true}
}

func (id Id) Ident() string {
	return id.ident
}

func (id Id) Metadata() (string, bool) {
	return id.metadata, id.hasMeta
}

// String renders the id as ident or ident<metadata>.
func (id Id) String() string {
	if !id.hasMeta {
		return id.ident
	}
	return id.ident + "<" + id.metadata + ">"
}

// Compare orders ids by ident, then places ids without metadata before
// ids with metadata, then orders by metadata.
func (id Id) Compare(o Id) int {
	if c := cmp.Compare(id.ident, o.ident); c != 0 {
		return c
	}
	if id.hasMeta != o.hasMeta {
		if !id.hasMeta {
			return -1
		}
		return 1
	}
	return cmp.Compare(id.metadata, o.metadata)
}

func (id Id) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	id.writeHash(&h)
	return h.Sum64()
}

func (id Id) writeHash(h *maphash.Hash) {
	writeString(h, id.ident)
	writeOptString(h, id.metadata, id.hasMeta)
}
