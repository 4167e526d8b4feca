package security

import "sync"

// Denylist holds user ids whose sessions must be refused. Entries are
// added by admins when an account is compromised or offboarded and the
// session has not yet expired.
type Denylist struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

func NewDenylist() *Denylist {
	return &Denylist{ids: make(map[int64]struct{})}
}

func (d *Denylist) Add(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ids[userID] = struct{}{}
}

func (d *Denylist) Remove(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.ids, userID)
}

func (d *Denylist) Contains(userID int64) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.ids[userID]
	return ok
}

func (d *Denylist) List() []int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]int64, 0, len(d.ids))
	for id := range d.ids {
		out = append(out, id)
	}
	return out
}

// Default is the process-wide denylist used by the middleware.
var Default = NewDenylist()
