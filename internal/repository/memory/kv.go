package memory

import "sync"

// KVRepo is an in-process key/value repository
type KVRepo struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKVRepo creates an empty in-memory repository
func NewKVRepo() *KVRepo {
	return &KVRepo{values: make(map[string]string)}
}

// Get returns the value for key
func (r *KVRepo) Get(key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

// Set stores value under key
func (r *KVRepo) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
