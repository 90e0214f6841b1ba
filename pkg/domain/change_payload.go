package domain

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ChangePayload wraps the JSON snapshot of one entity change as it leaves the
// store. Replication sinks ship the raw bytes; readers decode them through a
// kind registry.
type ChangePayload struct {
	defined bool
	kind    Kind
	version uint64
	deleted bool
	raw     json.RawMessage
}

// NewChangePayload encodes the current state of e.
func NewChangePayload(e *Entity) (ChangePayload, error) {
	if e == nil {
		return ChangePayload{}, errors.New("change payload: nil entity")
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return ChangePayload{}, errors.Wrapf(err, "change payload %s", e.ID())
	}
	return ChangePayload{
		defined: true,
		kind:    e.Kind(),
		version: e.RowVersion(),
		deleted: e.Deleted(),
		raw:     raw,
	}, nil
}

// ParseChangePayload wraps bytes previously produced by NewChangePayload.
func ParseChangePayload(raw []byte) (ChangePayload, error) {
	var head struct {
		Kind       Kind   `json:"kind"`
		RowVersion uint64 `json:"row_version"`
		Deleted    bool   `json:"deleted"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ChangePayload{}, errors.Wrap(err, "parse change payload")
	}
	return ChangePayload{
		defined: true,
		kind:    head.Kind,
		version: head.RowVersion,
		deleted: head.Deleted,
		raw:     cloneRawMessage(raw),
	}, nil
}

// UndefinedChangePayload returns an uninitialized payload wrapper.
func UndefinedChangePayload() ChangePayload {
	return ChangePayload{}
}

// Defined reports whether the payload has been initialized.
func (p ChangePayload) Defined() bool { return p.defined }

func (p ChangePayload) Kind() Kind         { return p.kind }
func (p ChangePayload) RowVersion() uint64 { return p.version }
func (p ChangePayload) Deleted() bool      { return p.deleted }

// Raw returns a cloned copy of the underlying JSON bytes. Nil is returned when
// the payload is undefined.
func (p ChangePayload) Raw() json.RawMessage {
	if !p.defined || len(p.raw) == 0 {
		return nil
	}
	return cloneRawMessage(p.raw)
}

// Decode rebuilds the entity through dec.
func (p ChangePayload) Decode(dec EntityDecoder) (*Entity, error) {
	if !p.defined {
		return nil, errors.New("decode change payload: undefined")
	}
	return dec.Decode(p.raw)
}

func cloneRawMessage(raw []byte) json.RawMessage {
	if raw == nil {
		return nil
	}
	cloned := make(json.RawMessage, len(raw))
	copy(cloned, raw)
	return cloned
}
