package rdfcodec

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// ETag computes the weak ETag for a serialized representation:
// W/"<lowercase hex MD5 of the bytes>".
func ETag(serialized []byte) string {
	sum := md5.Sum(serialized)
	return fmt.Sprintf(`W/"%s"`, hex.EncodeToString(sum[:]))
}
