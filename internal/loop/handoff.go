package loop

import (
	"sync/atomic"

	"github.com/tomz197/dungeon/internal/input"
)

// KeySlot is a single-slot mailbox for the last key press. A new key
// overwrites an unconsumed one; Take empties the slot.
type KeySlot struct {
	slot atomic.Pointer[input.Key]
}

// Store places k in the slot, replacing any unconsumed key.
func (m *KeySlot) Store(k input.Key) {
	m.slot.Store(&k)
}

// Take removes and returns the pending key, if any.
func (m *KeySlot) Take() (input.Key, bool) {
	p := m.slot.Swap(nil)
	if p == nil {
		return input.Key{}, false
	}
	return *p, true
}

// TickFlag records that a tick is pending. Ticks arriving before the
// previous one is consumed coalesce into one.
type TickFlag struct {
	pending atomic.Bool
}

// Set marks a tick as pending.
func (f *TickFlag) Set() {
	f.pending.Store(true)
}

// Take clears the flag, reporting whether a tick was pending.
func (f *TickFlag) Take() bool {
	return f.pending.CompareAndSwap(true, false)
}

// Events are the two handoff slots between the event source and the loop.
type Events struct {
	Keys KeySlot
	Tick TickFlag
}
