// Package dagstore persists built octree DAGs.
//
// A build is stored as two objects under a versioned prefix keyed by a
// deterministic build id:
//
//	v1/octdags/{buildID}/graph.bin      wire encoded graph
//	v1/octdags/{buildID}/manifest.cbor  CBOR manifest, written last
//
// The manifest records the scene, depth, sizes and a SHA-256 digest of the
// graph bytes. Load refuses a graph whose bytes do not match its manifest.
//
// The same layout is used on a local filesystem (DirStore) and in Azure blob
// storage (BlobStore).
package dagstore
