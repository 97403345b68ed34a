package domain

import (
	"hash/fnv"
	"io"
	"strings"
)

// ModelKey is the identity under which device entries from different
// correlated sections are merged: the description compares
// case-insensitively, the hardware ids compare element-wise, in order,
// case-sensitively. The mixed sensitivity is deliberate and must not be
// replaced with a uniform comparison.
type ModelKey struct {
	Description string
	HardwareIDs []string
}

// Equal reports whether two keys identify the same model. The
// description comparison goes through the same lowercase projection as
// Hash so the two can never disagree.
func (k ModelKey) Equal(other ModelKey) bool {
	if strings.ToLower(k.Description) != strings.ToLower(other.Description) {
		return false
	}
	if len(k.HardwareIDs) != len(other.HardwareIDs) {
		return false
	}
	for i, id := range k.HardwareIDs {
		if id != other.HardwareIDs[i] {
			return false
		}
	}
	return true
}

// Hash folds the lowercased description and the ordered hardware ids
// into a single FNV-1a value. A zero byte separates components so
// boundaries shift the fold.
func (k ModelKey) Hash() uint64 {
	h := fnv.New64a()
	io.WriteString(h, strings.ToLower(k.Description))
	for _, id := range k.HardwareIDs {
		h.Write([]byte{0})
		io.WriteString(h, id)
	}
	return h.Sum64()
}
