package storage

import (
	"errors"
	"path"
	"strings"
)

var ErrInvalidPath = errors.New("invalid storage path")

// cleanKey normalizes an object key to forward slashes without a leading slash
// and rejects keys that escape the storage root.
func cleanKey(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" || p == "." {
		return "", ErrInvalidPath
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", ErrInvalidPath
		}
	}
	return p, nil
}
