package knowledge

import "sync"

// keyLock serializes critical sections per fact key so concurrent Learn
// calls on the same (subject, relationship) cannot interleave their
// check-then-act sequence. Locks are created lazily and kept for the
// store's lifetime; the key space is the curated fact vocabulary, so
// there is no unbounded growth to clean up.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLock() *keyLock {
	return &keyLock{
		locks: make(map[string]*sync.Mutex),
	}
}

func (k *keyLock) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	if l, ok := k.locks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	k.locks[key] = l
	return l
}

// Acquire locks the named key and returns the release func.
func (k *keyLock) Acquire(key string) func() {
	l := k.get(key)
	l.Lock()
	return l.Unlock
}
