package ports

import (
	"context"
	"iter"
)

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates the file was created or replaced.
	OpCreate WatchOp = iota
	// OpWrite indicates the file was modified.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// WatchEvent is a change to the watched file.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports changes to a single file.
type Watcher interface {
	// Start begins watching path. Replacing the file (for example by
	// re-pointing a symlink) is reported as well as writes to it.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of change events. It ends when the watcher stops.
	Events() iter.Seq[WatchEvent]
}
