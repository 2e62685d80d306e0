package dagstore

import "errors"

var (
	ErrNotFound         = errors.New("dagstore: object not found")
	ErrExists           = errors.New("dagstore: optimistic concurrency failure, object already exists")
	ErrBadObjectType    = errors.New("dagstore: unknown object type")
	ErrBadPath          = errors.New("dagstore: path does not name a build object")
	ErrManifestVersion  = errors.New("dagstore: unsupported manifest version")
	ErrManifestMismatch = errors.New("dagstore: manifest does not describe this graph")
	ErrDigestMismatch   = errors.New("dagstore: graph digest does not match the manifest")
	ErrStoreNotProvided = errors.New("dagstore: a store was required but not provided")
)
