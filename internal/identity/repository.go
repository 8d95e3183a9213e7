package identity

import (
	"context"
	"sync"
	"time"

	"github.com/xnn-portal/xnn-portal/internal/shared"
)

// DirectoryEntry pairs a principal with its login secret. The secret stays
// inside the directory; lookups for anything but credential checks return
// the principal alone.
type DirectoryEntry struct {
	Principal Principal
	Secret    string
}

// DirectoryPort describes the fixed-at-startup principal directory.
type DirectoryPort interface {
	Lookup(ctx context.Context, username string) (DirectoryEntry, error)
	Principal(ctx context.Context, id string) (Principal, error)
	Staff(ctx context.Context) ([]StaffMember, error)
	StaffMember(ctx context.Context, id string) (StaffMember, error)
	TouchLastActive(ctx context.Context, id string, at time.Time) error
}

// MemoryDirectory is the in-memory directory implementation.
type MemoryDirectory struct {
	mu         sync.RWMutex
	byUsername map[string]DirectoryEntry
	byID       map[string]string
	staff      []StaffMember
}

// NewMemoryDirectory builds a directory from the given entries and staff
// records. Staff records whose principal is absent from entries are kept;
// they are read-only roster rows.
func NewMemoryDirectory(entries []DirectoryEntry, staff []StaffMember) *MemoryDirectory {
	d := &MemoryDirectory{
		byUsername: make(map[string]DirectoryEntry, len(entries)),
		byID:       make(map[string]string, len(entries)),
		staff:      append([]StaffMember(nil), staff...),
	}
	for _, e := range entries {
		d.byUsername[e.Principal.Username] = e
		d.byID[e.Principal.ID] = e.Principal.Username
	}
	return d
}

// Lookup finds a directory entry by username.
func (d *MemoryDirectory) Lookup(ctx context.Context, username string) (DirectoryEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	entry, ok := d.byUsername[username]
	if !ok {
		return DirectoryEntry{}, shared.ErrNotFound
	}
	return entry, nil
}

// Principal finds a principal by id.
func (d *MemoryDirectory) Principal(ctx context.Context, id string) (Principal, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	username, ok := d.byID[id]
	if !ok {
		return Principal{}, shared.ErrNotFound
	}
	return d.byUsername[username].Principal, nil
}

// Staff returns the newsroom roster.
func (d *MemoryDirectory) Staff(ctx context.Context) ([]StaffMember, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]StaffMember(nil), d.staff...), nil
}

// StaffMember returns one roster entry by principal id.
func (d *MemoryDirectory) StaffMember(ctx context.Context, id string) (StaffMember, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return StaffMember{}, shared.ErrNotFound
}

// TouchLastActive stamps the principal's last-active instant.
func (d *MemoryDirectory) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	username, ok := d.byID[id]
	if !ok {
		return shared.ErrNotFound
	}
	entry := d.byUsername[username]
	entry.Principal.LastActive = at
	d.byUsername[username] = entry
	for i := range d.staff {
		if d.staff[i].ID == id {
			d.staff[i].LastActive = at
		}
	}
	return nil
}
