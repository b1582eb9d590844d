package pdb

import "fmt"

// maxBuckets bounds the bucket vector. g-values fit in one byte, so any
// legal generation stays far below this; the limit only guards against a
// runaway caller.
const maxBuckets = 1 << 16

// Open is a monotone priority queue for generation, keyed by integer
// g-value. Each bucket holds the nodes of one g; order inside a bucket is
// LIFO, which is harmless because all entries of a bucket share the same
// key.
//
// Invariant: when the queue is empty, mini = maxi = 1 (a sentinel above
// any real index of an empty queue); otherwise mini <= maxi and both
// reference non-empty buckets.
type Open struct {
	buckets [][]Node
	size    int
	mini    int
	maxi    int
}

// NewOpen returns an empty queue with a single bucket.
func NewOpen() *Open {
	return &Open{
		buckets: make([][]Node, 1),
		mini:    1,
		maxi:    1,
	}
}

// Len returns the number of nodes queued.
func (o *Open) Len() int { return o.size }

// Buckets returns the current number of buckets.
func (o *Open) Buckets() int { return len(o.buckets) }

// BucketLen returns the number of nodes in bucket idx.
func (o *Open) BucketLen(idx int) int { return len(o.buckets[idx]) }

// Min returns the lowest non-empty bucket index, or 1 when empty.
func (o *Open) Min() int { return o.mini }

// Max returns the highest non-empty bucket index, or 1 when empty.
func (o *Open) Max() int { return o.maxi }

// SetBuckets grows the bucket vector by doubling until it can address
// index n-1 and returns the resulting count. It fails with
// ErrCapacityExceeded when n is beyond the implementation limit.
func (o *Open) SetBuckets(n int) (int, error) {
	if n >= maxBuckets {
		return 0, fmt.Errorf("%w: %d requested, limit %d", ErrCapacityExceeded, n, maxBuckets)
	}
	sz := len(o.buckets)
	for sz < n {
		sz *= 2
	}
	if sz > len(o.buckets) {
		grown := make([][]Node, sz)
		copy(grown, o.buckets)
		o.buckets = grown
	}
	return len(o.buckets), nil
}

// Insert adds the node to the bucket of its g-value, growing the bucket
// vector when needed.
func (o *Open) Insert(n Node) error {
	idx := int(n.G)
	if _, err := o.SetBuckets(1 + idx); err != nil {
		return err
	}

	o.buckets[idx] = append(o.buckets[idx], n)

	o.size++
	if o.size == 1 {
		o.mini, o.maxi = idx, idx
	} else {
		o.mini = min(o.mini, idx)
		o.maxi = max(o.maxi, idx)
	}
	return nil
}

// PopFront extracts a node from the lowest non-empty bucket. Consecutive
// calls yield nodes in non-decreasing g order, the only ordering the
// generator depends on.
func (o *Open) PopFront() (Node, error) { return o.Remove(o.mini) }

// Remove extracts a node from bucket idx. It fails with ErrEmptyBucket
// when that bucket holds nothing.
func (o *Open) Remove(idx int) (Node, error) {
	if idx >= len(o.buckets) || len(o.buckets[idx]) == 0 {
		return Node{}, fmt.Errorf("%w: bucket %d", ErrEmptyBucket, idx)
	}

	last := len(o.buckets[idx]) - 1
	item := o.buckets[idx][last]
	o.buckets[idx][last] = Node{}
	o.buckets[idx] = o.buckets[idx][:last]

	o.size--
	if o.size == 0 {
		o.mini, o.maxi = 1, 1
		return item, nil
	}

	// When a bucket drains, advance the touched bound to the next
	// non-empty bucket.
	if len(o.buckets[idx]) == 0 {
		if idx <= o.mini {
			for o.mini = idx; o.mini <= o.maxi && len(o.buckets[o.mini]) == 0; o.mini++ {
			}
		}
		if idx >= o.maxi {
			for o.maxi = idx; o.maxi >= o.mini && len(o.buckets[o.maxi]) == 0; o.maxi-- {
			}
		}
	}
	return item, nil
}
