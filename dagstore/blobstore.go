package dagstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

const (
	azblobBlobNotFound      = "BlobNotFound"
	azblobBlobAlreadyExists = "BlobAlreadyExists"
	azblobConditionNotMet   = "ConditionNotMet"

	TagBuildID    = "buildid"
	TagObjectType = "objecttype"
	TagVersion    = "version"
)

// blobStorer is the subset of *azblob.Storer used by BlobStore.
type blobStorer interface {
	Put(ctx context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option) (*azblob.WriteResponse, error)
	Reader(ctx context.Context, identity string, opts ...azblob.Option) (*azblob.ReaderResponse, error)
}

// BlobStore keeps builds in an Azure blob container.
type BlobStore struct {
	Store blobStorer
	Log   logger.Logger

	// ReadOpts are forwarded on every read.
	ReadOpts []azblob.Option
}

func NewBlobStore(store blobStorer, log logger.Logger, readOpts ...azblob.Option) *BlobStore {
	return &BlobStore{Store: store, Log: log, ReadOpts: readOpts}
}

func (s *BlobStore) Put(
	ctx context.Context, buildID uuid.UUID, otype ObjectType, data []byte, failIfExists bool) error {

	if s.Store == nil {
		return ErrStoreNotProvided
	}
	blobPath, err := ObjectPath(buildID, otype)
	if err != nil {
		return err
	}

	opts := []azblob.Option{azblob.WithTags(map[string]string{
		TagBuildID:    buildID.String(),
		TagObjectType: otype.String(),
		TagVersion:    strconv.Itoa(ManifestVersion),
	})}
	if failIfExists {
		// Fail without modifying if any version of the blob exists.
		opts = append(opts, azblob.WithEtagNoneMatch("*"))
	}

	_, err = s.Store.Put(ctx, blobPath, azblob.NewBytesReaderCloser(data), opts...)
	if err != nil {
		return WrapBlobError(err)
	}
	s.debugf("dagstore: put %s (%d bytes)", blobPath, len(data))
	return nil
}

func (s *BlobStore) Get(ctx context.Context, buildID uuid.UUID, otype ObjectType) ([]byte, error) {
	if s.Store == nil {
		return nil, ErrStoreNotProvided
	}
	blobPath, err := ObjectPath(buildID, otype)
	if err != nil {
		return nil, err
	}

	rr, err := s.Store.Reader(ctx, blobPath, s.ReadOpts...)
	if err != nil {
		return nil, WrapBlobError(err)
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return nil, err
	}
	s.debugf("dagstore: get %s (%d bytes)", blobPath, len(data))
	return data, nil
}

func (s *BlobStore) debugf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Debugf(format, args...)
	}
}

func AsStorageError(err error) (azStorageBlob.StorageError, bool) {
	serr := &azStorageBlob.StorageError{}
	//nolint
	ierr, ok := err.(*azStorageBlob.InternalError)
	if ierr == nil || !ok {
		return azStorageBlob.StorageError{}, false
	}
	if !ierr.As(&serr) {
		return azStorageBlob.StorageError{}, false
	}
	return *serr, true
}

// WrapBlobError translates azure not-found and precondition failures to
// ErrNotFound and ErrExists. Other errors, including nil, are returned as is.
func WrapBlobError(err error) error {
	if err == nil {
		return nil
	}
	serr, ok := AsStorageError(err)
	if !ok {
		return err
	}
	switch serr.ErrorCode {
	case azblobBlobNotFound:
		return fmt.Errorf("%s: %w", err.Error(), ErrNotFound)
	case azblobBlobAlreadyExists, azblobConditionNotMet:
		return fmt.Errorf("%s: %w", err.Error(), ErrExists)
	}
	return err
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	serr, ok := AsStorageError(err)
	return ok && serr.ErrorCode == azblobBlobNotFound
}
