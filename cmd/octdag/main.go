// Command octdag builds sparse voxel octree DAGs from procedural scenes and
// stores them for a renderer to load.
package main

import "os"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
