package keymatch

import (
	"iter"

	"go.etcd.io/bbolt"
)

// ScanBucket walks every row of a Bolt bucket in key order and yields the
// ones the matcher keeps under the given polarity. The pattern is compiled
// once per scan. Keys and values are only valid until the cursor advances;
// copy them if they outlive the loop body.
func ScanBucket(b *bbolt.Bucket, m *Matcher, pol Polarity) iter.Seq2[[]byte, []byte] {
	pat := m.Compile()
	return func(yield func([]byte, []byte) bool) {
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if !pol.keep(pat.Match(k)) {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// CountMatching reports how many keys of the bucket the matcher keeps.
func CountMatching(b *bbolt.Bucket, m *Matcher, pol Polarity) int {
	var n int
	for range ScanBucket(b, m, pol) {
		n++
	}
	return n
}
