package dagstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

// DirStore keeps builds under a local directory using the storage path
// layout.
type DirStore struct {
	Root string
	Log  logger.Logger
}

func NewDirStore(root string, log logger.Logger) *DirStore {
	return &DirStore{Root: root, Log: log}
}

func (s *DirStore) objectFile(buildID uuid.UUID, otype ObjectType) (string, error) {
	p, err := ObjectPath(buildID, otype)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.Root, filepath.FromSlash(p)), nil
}

func (s *DirStore) Put(
	ctx context.Context, buildID uuid.UUID, otype ObjectType, data []byte, failIfExists bool) error {

	name, err := s.objectFile(buildID, otype)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}

	if failIfExists {
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		s.debugf("dagstore: put %s (%d bytes)", name, len(data))
		return nil
	}

	// Replace atomically so readers never see a partial object.
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return err
	}
	s.debugf("dagstore: put %s (%d bytes)", name, len(data))
	return nil
}

func (s *DirStore) Get(ctx context.Context, buildID uuid.UUID, otype ObjectType) ([]byte, error) {
	name, err := s.objectFile(buildID, otype)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	s.debugf("dagstore: get %s (%d bytes)", name, len(data))
	return data, nil
}

// List returns the ids of builds that have a manifest.
func (s *DirStore) List(ctx context.Context) ([]uuid.UUID, error) {
	entries, err := os.ReadDir(filepath.Join(s.Root, filepath.FromSlash(V1OctDagPrefix)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []uuid.UUID
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id, err := uuid.Parse(e.Name())
		if err != nil {
			continue
		}
		name, _ := s.objectFile(id, ObjectManifest)
		if _, err := os.Stat(name); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *DirStore) debugf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Debugf(format, args...)
	}
}
