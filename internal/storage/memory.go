package storage

// MemoryStore is a non-durable store, used when no file is configured and in
// tests.
type MemoryStore struct {
	values map[string]string
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.values[key] = value
	s.Writes++
}
