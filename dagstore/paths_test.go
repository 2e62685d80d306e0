package dagstore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath(t *testing.T) {
	id := uuid.MustParse("0d8e4bb2-7c4a-5f0e-9a4c-3c1c2f9f3b8a")

	p, err := ObjectPath(id, ObjectGraph)
	require.NoError(t, err)
	assert.Equal(t, "v1/octdags/0d8e4bb2-7c4a-5f0e-9a4c-3c1c2f9f3b8a/graph.bin", p)

	p, err = ObjectPath(id, ObjectManifest)
	require.NoError(t, err)
	assert.Equal(t, "v1/octdags/0d8e4bb2-7c4a-5f0e-9a4c-3c1c2f9f3b8a/manifest.cbor", p)

	_, err = ObjectPath(id, ObjectUndefined)
	require.ErrorIs(t, err, ErrBadObjectType)
}

func TestParseObjectPath(t *testing.T) {
	id := uuid.MustParse("0d8e4bb2-7c4a-5f0e-9a4c-3c1c2f9f3b8a")

	tests := []struct {
		name      string
		path      string
		wantType  ObjectType
		wantError bool
	}{
		{"graph", "v1/octdags/" + id.String() + "/graph.bin", ObjectGraph, false},
		{"manifest", "v1/octdags/" + id.String() + "/manifest.cbor", ObjectManifest, false},
		{"hosted", "https://example.blob.core.windows.net/octdags/v1/octdags/" + id.String() + "/graph.bin", ObjectGraph, false},
		{"other prefix", "v1/mmrs/" + id.String() + "/graph.bin", ObjectUndefined, true},
		{"bad uuid", "v1/octdags/not-a-uuid-at-all-but-36-chars-long/graph.bin", ObjectUndefined, true},
		{"unknown object", "v1/octdags/" + id.String() + "/graph.txt", ObjectUndefined, true},
		{"prefix only", BuildPrefix(id), ObjectUndefined, true},
		{"truncated", "v1/octdags/" + id.String()[:10], ObjectUndefined, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotID, gotType, err := ParseObjectPath(tc.path)
			if tc.wantError {
				require.ErrorIs(t, err, ErrBadPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, gotID)
			assert.Equal(t, tc.wantType, gotType)
		})
	}
}

func TestBuildIDStable(t *testing.T) {
	a := BuildID("perimeter:coloured-walls", 4, "hashed")
	b := BuildID("perimeter:coloured-walls", 4, "hashed")
	require.Equal(t, a, b)
	require.Equal(t, uuid.Version(5), a.Version())

	require.NotEqual(t, a, BuildID("perimeter:coloured-walls", 5, "hashed"))
	require.NotEqual(t, a, BuildID("perimeter:clear-blue", 4, "hashed"))
	require.NotEqual(t, a, BuildID("perimeter:coloured-walls", 4, "none"))
}
