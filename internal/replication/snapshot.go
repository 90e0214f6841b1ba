package replication

import (
	"bytes"
	"context"
	"encoding/json"

	"barrelman/internal/blob"
	"barrelman/internal/infra/persistence/memory"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
)

// Exporter is a store that can produce a full snapshot.
type Exporter interface {
	ExportState() memory.Snapshot
}

// ExportSnapshot writes the store's full state, tombstones included, to key.
func ExportSnapshot(ctx context.Context, store Exporter, blobs blob.Store, key string) (blob.Info, error) {
	snap := store.ExportState()
	data, err := json.Marshal(snap)
	if err != nil {
		return blob.Info{}, errors.Wrap(err, "encode snapshot")
	}
	info, err := blobs.Put(ctx, key, bytes.NewReader(data), blob.PutOptions{
		ContentType: "application/json",
		Overwrite:   true,
	})
	if err != nil {
		return blob.Info{}, errors.Wrapf(err, "write snapshot %s", key)
	}
	return info, nil
}

// LoadSnapshot reads a snapshot written by ExportSnapshot, decoding each
// entity through dec.
func LoadSnapshot(ctx context.Context, blobs blob.Store, key string, dec domain.EntityDecoder) (memory.Snapshot, error) {
	_, rc, err := blobs.Get(ctx, key)
	if err != nil {
		return memory.Snapshot{}, errors.Wrapf(err, "read snapshot %s", key)
	}
	defer func() { _ = rc.Close() }()
	return memory.DecodeSnapshot(rc, dec)
}
