package anybox

import "unsafe"

// erased is the storage shared by all handle variants. ptr points to a heap
// allocated value of the type identified by typ.
type erased struct {
	_ noCopy

	typ TypeId
	ptr unsafe.Pointer
}

func eraseInto[T any](e *erased, value T) {
	ptrToValue := new(T)
	*ptrToValue = value

	e.typ = TypeIdOf[T]()
	e.ptr = unsafe.Pointer(ptrToValue)
}

// moveFrom transfers the value from source to e, leaving source empty.
func (e *erased) moveFrom(source *erased) {
	e.typ, e.ptr = source.typ, source.ptr
	source.typ, source.ptr = TypeId{}, nil
}

// TypeId returns the TypeId of the erased value, or the zero TypeId if the
// value was already moved out of the handle.
func (e *erased) TypeId() TypeId {
	return e.typ
}

func (e *erased) erasedValue() *erased {
	return e
}

// Downcast is implemented by all handles of this package.
type Downcast interface {
	HasTypeId
	erasedValue() *erased
}

// DowncastRefUnchecked returns a pointer to the erased value. The pointer
// must only be used for reading.
//
// The type of the erased value is not checked. Calling this with any type
// other than the one the handle was created from is undefined behaviour.
// Compare d.TypeId() with TypeIdOf[T]() first if you do not know the type.
func DowncastRefUnchecked[T any](d Downcast) *T {
	return (*T)(d.erasedValue().ptr)
}

// DowncastMutUnchecked returns a pointer to the erased value. Writes through
// the pointer are visible to every later downcast of the same handle.
//
// As with DowncastRefUnchecked, T must be the exact type of the erased value.
func DowncastMutUnchecked[T any](d Downcast) *T {
	return (*T)(d.erasedValue().ptr)
}

// DowncastUnchecked moves the value out of the handle. The handle is empty
// afterward and must not be used anymore.
//
// As with DowncastRefUnchecked, T must be the exact type of the erased value.
func DowncastUnchecked[T any](d Downcast) T {
	e := d.erasedValue()

	value := *(*T)(e.ptr)

	e.typ, e.ptr = TypeId{}, nil

	return value
}
