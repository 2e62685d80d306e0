package dagstore

import (
	"context"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/forestrie/go-octdag/octdag"
)

type Committer struct {
	Log   logger.Logger
	Store ObjectWriter
	Codec ManifestCodec
}

func NewCommitter(log logger.Logger, store ObjectWriter) (*Committer, error) {
	codec, err := NewManifestCodec()
	if err != nil {
		return nil, err
	}
	return &Committer{Log: log, Store: store, Codec: codec}, nil
}

// Commit stores g under buildID. The graph is written before the manifest so
// a present manifest always has its graph.
func (c *Committer) Commit(
	ctx context.Context, buildID uuid.UUID, g *octdag.Graph, failIfExists bool) (Manifest, error) {

	if c.Store == nil {
		return Manifest{}, ErrStoreNotProvided
	}

	data := g.Bytes()
	m := NewManifest(buildID, g, data)
	mdata, err := c.Codec.Encode(m)
	if err != nil {
		return Manifest{}, err
	}

	if err := c.Store.Put(ctx, buildID, ObjectGraph, data, failIfExists); err != nil {
		return Manifest{}, fmt.Errorf("graph %s: %w", buildID, err)
	}
	if err := c.Store.Put(ctx, buildID, ObjectManifest, mdata, failIfExists); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", buildID, err)
	}

	if c.Log != nil {
		c.Log.Infof("dagstore: committed %s: %d nodes, %d bytes", buildID, m.NodeCount, m.NodeBytes)
	}
	return m, nil
}

// Load reads and verifies a stored build.
func Load(ctx context.Context, store ObjectReader, buildID uuid.UUID) (*octdag.Graph, Manifest, error) {
	if store == nil {
		return nil, Manifest{}, ErrStoreNotProvided
	}
	codec, err := NewManifestCodec()
	if err != nil {
		return nil, Manifest{}, err
	}

	mdata, err := store.Get(ctx, buildID, ObjectManifest)
	if err != nil {
		return nil, Manifest{}, err
	}
	m, err := codec.Decode(mdata)
	if err != nil {
		return nil, Manifest{}, err
	}
	id, err := m.ID()
	if err != nil || id != buildID {
		return nil, Manifest{}, fmt.Errorf("%w: build id %x, want %s", ErrManifestMismatch, m.BuildID, buildID)
	}

	data, err := store.Get(ctx, buildID, ObjectGraph)
	if err != nil {
		return nil, Manifest{}, err
	}
	if err := m.Verify(data); err != nil {
		return nil, Manifest{}, err
	}
	g, err := octdag.Decode(data)
	if err != nil {
		return nil, Manifest{}, err
	}
	return g, m, nil
}
