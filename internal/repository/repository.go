package repository

// KeyValueRepository stores string values under namespaced keys
type KeyValueRepository interface {
	// Get returns the value for key and whether it exists
	Get(key string) (string, bool, error)
	// Set creates or overwrites the value for key
	Set(key, value string) error
}
