package dagstore

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/forestrie/go-octdag/octdag"
)

const ManifestVersion = 1

// Manifest describes a stored graph.
type Manifest struct {
	Version   uint8        `cbor:"1,keyasint"`
	BuildID   []byte       `cbor:"2,keyasint"`
	Scene     string       `cbor:"3,keyasint"`
	MaxDepth  uint32       `cbor:"4,keyasint"`
	NodeCount uint64       `cbor:"5,keyasint"`
	NodeBytes uint64       `cbor:"6,keyasint"`
	Digest    []byte       `cbor:"7,keyasint"`
	Stats     octdag.Stats `cbor:"8,keyasint"`
}

// ManifestCodec encodes manifests with core deterministic CBOR, so equal
// manifests always produce equal bytes.
type ManifestCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewManifestCodec() (ManifestCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return ManifestCodec{}, err
	}
	dec, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		return ManifestCodec{}, err
	}
	return ManifestCodec{enc: enc, dec: dec}, nil
}

func (c ManifestCodec) Encode(m Manifest) ([]byte, error) {
	return c.enc.Marshal(m)
}

func (c ManifestCodec) Decode(data []byte) (Manifest, error) {
	var m Manifest
	if err := c.dec.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	if m.Version != ManifestVersion {
		return Manifest{}, fmt.Errorf("%w: %d", ErrManifestVersion, m.Version)
	}
	return m, nil
}

// NewManifest describes graph data, the wire encoding of g.
func NewManifest(buildID uuid.UUID, g *octdag.Graph, data []byte) Manifest {
	st := g.Stats()
	digest := sha256.Sum256(data)
	return Manifest{
		Version:   ManifestVersion,
		BuildID:   buildID[:],
		Scene:     st.Scene,
		MaxDepth:  g.MaxDepth(),
		NodeCount: uint64(g.Len()),
		NodeBytes: uint64(len(data)),
		Digest:    digest[:],
		Stats:     st,
	}
}

// ID returns the manifest's build id.
func (m Manifest) ID() (uuid.UUID, error) {
	return uuid.FromBytes(m.BuildID)
}

// Verify checks graph data against the sizes and digest in the manifest.
func (m Manifest) Verify(data []byte) error {
	if uint64(len(data)) != m.NodeBytes {
		return fmt.Errorf("%w: %d bytes, manifest has %d", ErrManifestMismatch, len(data), m.NodeBytes)
	}
	if octdag.GraphBytes(m.NodeCount) != m.NodeBytes {
		return fmt.Errorf("%w: %d nodes in %d bytes", ErrManifestMismatch, m.NodeCount, m.NodeBytes)
	}
	digest := sha256.Sum256(data)
	if !bytes.Equal(digest[:], m.Digest) {
		return fmt.Errorf("%w: %x", ErrDigestMismatch, digest)
	}
	return nil
}
