package anybox

// Transferable is implemented by types that can be moved to and used by
// another goroutine than the one that created them. Types opt in by
// embedding Transfer or Share.
//
// A type that holds goroutine confined state, e.g. something that relies on
// runtime.LockOSThread, must not embed either.
type Transferable interface {
	__isTransferable()
}

// Shareable is implemented by types that can be accessed from multiple
// goroutines at the same time. A Shareable type is always Transferable.
// Types opt in by embedding Share.
type Shareable interface {
	Transferable
	__isShareable()
}

// Transfer marks the embedding type as Transferable.
type Transfer struct{}

func (Transfer) __isTransferable() {}

// Share marks the embedding type as Shareable.
type Share struct {
	Transfer
}

func (Share) __isShareable() {}

// Scalar matches the predeclared scalar types and all types defined on top of them.
// Values of those types are immutable and copied on assignment.
type Scalar interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~string
}

// Value wraps a Scalar so it can be erased by any of the handle variants.
type Value[T Scalar] struct {
	Share
	V T
}

func ValueOf[T Scalar](value T) Value[T] {
	return Value[T]{V: value}
}

func (v Value[T]) Clone() Value[T] {
	return v
}
