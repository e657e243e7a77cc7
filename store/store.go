package store

import (
	"io"

	"github.com/gamepanel/glcd/virtual"
)

// Store describes a persistent storage engine for named screen snapshots
// captured from the virtual device.
type Store interface {
	Snapshot(name string) (virtual.Snapshot, error)
	ListSnapshots() ([]string, error)
	PutSnapshot(name string, snap virtual.Snapshot) error

	io.Closer
}
