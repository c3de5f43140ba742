package graph

import "github.com/minio/highwayhash"

// hashKey has to be exactly 32 bytes long
var hashKey = []byte("uicover-component-content-key-32")

// Hash returns a 64 bit content hash used to detect changed sources
func Hash(data []byte) uint64 {
	return highwayhash.Sum64(data, hashKey)
}
