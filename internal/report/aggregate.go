package report

import "infreport/internal/domain"

// modelAccum accumulates the architecture tags observed for one model
// identity.
type modelAccum struct {
	key           domain.ModelKey
	architectures []string
}

// aggregator merges device entries observed across a manufacturer's
// correlated sections by ModelKey, preserving two orderings: keys keep
// their first-discovery order, and each key's tag list keeps the order
// the key was observed in across sections. Tags are appended
// unconditionally, so the same tag can repeat when overlapping sections
// surface the same identity twice.
//
// Buckets are keyed by the ModelKey hash with an explicit Equal pass to
// resolve collisions; the mixed case-sensitivity of the key rules out a
// plain map key.
type aggregator struct {
	buckets map[uint64][]*modelAccum
	order   []*modelAccum
}

func newAggregator() *aggregator {
	return &aggregator{buckets: make(map[uint64][]*modelAccum)}
}

// add records one device entry observed under the given architecture
// tag ("" for the base section).
func (a *aggregator) add(entry domain.DeviceEntry, architecture string) {
	key := domain.ModelKey{Description: entry.Description, HardwareIDs: entry.HardwareIDs}
	hash := key.Hash()
	for _, acc := range a.buckets[hash] {
		if acc.key.Equal(key) {
			acc.architectures = append(acc.architectures, architecture)
			return
		}
	}
	acc := &modelAccum{key: key, architectures: []string{architecture}}
	a.buckets[hash] = append(a.buckets[hash], acc)
	a.order = append(a.order, acc)
}

// entries returns the accumulated models in first-discovery order.
func (a *aggregator) entries() []*modelAccum {
	return a.order
}
