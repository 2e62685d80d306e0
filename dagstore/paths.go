package dagstore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type ObjectType uint8

const (
	ObjectUndefined ObjectType = iota
	ObjectGraph
	ObjectManifest
)

const (
	V1OctDagPrefix = "v1/octdags"

	V1PathSep          = "/"
	V1GraphBlobName    = "graph.bin"
	V1ManifestBlobName = "manifest.cbor"

	// LenUUIDString is the length of the canonical uuid text form.
	LenUUIDString = 36
)

func (t ObjectType) String() string {
	switch t {
	case ObjectGraph:
		return "graph"
	case ObjectManifest:
		return "manifest"
	}
	return fmt.Sprintf("object(%d)", uint8(t))
}

// BuildPrefix returns the prefix holding every object of a build, with a
// trailing separator.
func BuildPrefix(buildID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/", V1OctDagPrefix, buildID)
}

// ObjectPath returns the storage path of one object of a build.
func ObjectPath(buildID uuid.UUID, otype ObjectType) (string, error) {
	switch otype {
	case ObjectGraph:
		return BuildPrefix(buildID) + V1GraphBlobName, nil
	case ObjectManifest:
		return BuildPrefix(buildID) + V1ManifestBlobName, nil
	}
	return "", fmt.Errorf("%w: %v", ErrBadObjectType, otype)
}

// ParseObjectPath recovers the build id and object type from a storage path.
// Any leading hosting prefix before V1OctDagPrefix is ignored.
func ParseObjectPath(storagePath string) (uuid.UUID, ObjectType, error) {
	prefix := V1OctDagPrefix + V1PathSep
	i := strings.Index(storagePath, prefix)
	if i == -1 {
		return uuid.Nil, ObjectUndefined, fmt.Errorf("%w: %s", ErrBadPath, storagePath)
	}
	rest := storagePath[i+len(prefix):]
	if len(rest) < LenUUIDString+1 || rest[LenUUIDString:LenUUIDString+1] != V1PathSep {
		return uuid.Nil, ObjectUndefined, fmt.Errorf("%w: %s", ErrBadPath, storagePath)
	}
	id, err := uuid.Parse(rest[:LenUUIDString])
	if err != nil {
		return uuid.Nil, ObjectUndefined, fmt.Errorf("%w: %s: %v", ErrBadPath, storagePath, err)
	}
	switch rest[LenUUIDString+1:] {
	case V1GraphBlobName:
		return id, ObjectGraph, nil
	case V1ManifestBlobName:
		return id, ObjectManifest, nil
	}
	return uuid.Nil, ObjectUndefined, fmt.Errorf("%w: %s", ErrBadPath, storagePath)
}
