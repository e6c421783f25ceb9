package hashing

// Hasher is the one-way password hashing capability. Compare reports a
// mismatch as false, never as an error; errors are reserved for internal
// faults of the implementation.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) (bool, error)
}
