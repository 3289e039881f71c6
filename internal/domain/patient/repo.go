package patient

import "context"

// SnapshotRepository persists the whole collection as one snapshot. Load
// returns (nil, nil) when no snapshot has been stored yet, which the caller
// treats as a first boot.
type SnapshotRepository interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
}
