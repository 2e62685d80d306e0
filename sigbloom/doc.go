package sigbloom

/*

# Node signature prefilters

This package provides Bloom filters over 32 byte node signatures, one filter
per octree depth, stored side by side in a single in-place region:

	+----------------------+  16B header (magic, version, params)
	| HeaderV1             |
	+----------------------+  bitset bytes (filter 0)
	| filter0 bitset       |
	+----------------------+
	| ...                  |
	+----------------------+  bitset bytes (filter n-1)
	| filtern-1 bitset     |
	+----------------------+

The DAG builder's linear dedup scan consults the filter for the node's depth
before walking that depth's table. A "definitely not present" answer skips the
scan entirely; "maybe present" falls through to the exact comparison, so false
positives cost time but never correctness.

Indexing uses deterministic double hashing over SHA-256 of
(domain || filterIdx || signature) with LSB0 bit numbering within each byte.

Functions carry a `V1` suffix naming the region format they implement.

*/
