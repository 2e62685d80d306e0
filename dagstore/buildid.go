package dagstore

import (
	"fmt"

	"github.com/google/uuid"
)

// NamespaceOctDag scopes build ids so they cannot collide with other name
// based uuids.
var NamespaceOctDag = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/forestrie/go-octdag"))

// BuildID derives a stable id for the inputs that determine a graph's bytes.
// Rebuilding the same scene at the same depth and dedup mode yields the same
// id, and the same bytes.
func BuildID(scene string, maxDepth uint32, dedup string) uuid.UUID {
	return uuid.NewSHA1(NamespaceOctDag, []byte(fmt.Sprintf("%s@%d/%s", scene, maxDepth, dedup)))
}
