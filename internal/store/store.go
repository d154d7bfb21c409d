package store

// Slot is a tiny key-value store. Each value is replaced wholesale on Put.
// A missing key is reported with ok == false and a nil error.
type Slot interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}
