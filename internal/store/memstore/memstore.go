package memstore

// Store keeps slots in memory. Used by tests and --ephemeral sessions.
type Store struct {
	slots map[string][]byte
}

func New() *Store {
	return &Store{slots: map[string][]byte{}}
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	v, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Put(key string, value []byte) error {
	s.slots[key] = append([]byte(nil), value...)
	return nil
}
