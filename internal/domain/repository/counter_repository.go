package repository

// CounterRepository defines the port for the per-type transfer counter.
type CounterRepository interface {
	// Increment bumps the counter for the given transfer type and returns the
	// new value. Must be a single atomic read-modify-write at the storage layer:
	// two concurrent callers never observe the same value. Returns not-found if
	// no counter row exists for the type (counters are provisioned out-of-band).
	Increment(transferType string) (int, error)
}
