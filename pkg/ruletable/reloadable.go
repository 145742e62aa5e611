package ruletable

import "sync/atomic"

// Reloadable is a Provider whose tables can be replaced at runtime. Reads are
// lock-free; a validation pass sees either the old or the new tables, never a
// mix of both.
type Reloadable struct {
	current atomic.Pointer[Tables]
}

// NewReloadable returns a Reloadable seeded with initial, or Default() if nil.
func NewReloadable(initial *Tables) *Reloadable {
	if initial == nil {
		initial = Default()
	}
	r := &Reloadable{}
	r.current.Store(initial)
	return r
}

func (r *Reloadable) Tables() *Tables {
	return r.current.Load()
}

// Store validates t and makes it current. Invalid tables are rejected and the
// previous tables stay in place.
func (r *Reloadable) Store(t *Tables) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.current.Store(t)
	return nil
}
