package domain

import (
	"slices"
	"strings"
)

// Snapshot maps a compatibility bucket key to the source directory of the
// package resolved into that bucket.
type Snapshot map[string]string

// BucketKey returns the "name:compat" key that groups versions a
// dependency manager treats as mutually compatible.
func BucketKey(name string, version Version) string {
	return name + ":" + version.Compat()
}

// PackageDiff is one bucket that differs between two snapshots.
// An empty Before or After means the bucket is absent on that side.
type PackageDiff struct {
	Bucket string
	Before string
	After  string
}

// IsAdded reports whether the bucket only exists after.
func (d PackageDiff) IsAdded() bool {
	return d.Before == "" && d.After != ""
}

// IsRemoved reports whether the bucket only exists before.
func (d PackageDiff) IsRemoved() bool {
	return d.Before != "" && d.After == ""
}

// IsChanged reports whether the bucket exists on both sides with different sources.
func (d PackageDiff) IsChanged() bool {
	return d.Before != "" && d.After != "" && d.Before != d.After
}

// SnapshotDiff is the set of buckets that differ between two snapshots.
type SnapshotDiff []PackageDiff

// Added returns the entries present only in the after snapshot.
func (s SnapshotDiff) Added() SnapshotDiff {
	return s.filter(PackageDiff.IsAdded)
}

// Removed returns the entries present only in the before snapshot.
func (s SnapshotDiff) Removed() SnapshotDiff {
	return s.filter(PackageDiff.IsRemoved)
}

// Changed returns the entries whose source directory changed.
func (s SnapshotDiff) Changed() SnapshotDiff {
	return s.filter(PackageDiff.IsChanged)
}

func (s SnapshotDiff) filter(keep func(PackageDiff) bool) SnapshotDiff {
	var out SnapshotDiff
	for _, d := range s {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// DiffSnapshots compares two snapshots by bucket key.
// Changed buckets are detected by source path identity, not content.
// Entries are emitted removed first, then added, then changed, each sorted by bucket.
func DiffSnapshots(before, after Snapshot) SnapshotDiff {
	var removed, added, changed SnapshotDiff

	for bucket, beforePath := range before {
		afterPath, ok := after[bucket]
		switch {
		case !ok:
			removed = append(removed, PackageDiff{Bucket: bucket, Before: beforePath})
		case beforePath != afterPath:
			changed = append(changed, PackageDiff{Bucket: bucket, Before: beforePath, After: afterPath})
		}
	}

	for bucket, afterPath := range after {
		if _, ok := before[bucket]; !ok {
			added = append(added, PackageDiff{Bucket: bucket, After: afterPath})
		}
	}

	byBucket := func(a, b PackageDiff) int {
		return strings.Compare(a.Bucket, b.Bucket)
	}
	slices.SortFunc(removed, byBucket)
	slices.SortFunc(added, byBucket)
	slices.SortFunc(changed, byBucket)

	out := make(SnapshotDiff, 0, len(removed)+len(added)+len(changed))
	out = append(out, removed...)
	out = append(out, added...)
	return append(out, changed...)
}
