package anybox

import (
	"fmt"
	"reflect"
	"unsafe"
)

// TypeId identifies a concrete go type for the lifetime of the process.
// Two TypeId values are equal exactly if they were derived from the same type.
type TypeId struct {
	ptr unsafe.Pointer
}

// TypeIdOf returns the TypeId of T.
func TypeIdOf[T any]() TypeId {
	return TypeId{ptr: abiTypePointerTo(reflect.TypeFor[T]())}
}

func (id TypeId) IsZero() bool {
	return id.ptr == nil
}

func (id TypeId) String() string {
	if id.ptr == nil {
		return "TypeId(nil)"
	}

	return id.reflectType().String()
}

func (id TypeId) GoString() string {
	if id.ptr == nil {
		return "TypeId(nil)"
	}

	return fmt.Sprintf("TypeId(%s)", id.reflectType())
}

// reflectType recovers the reflect.Type that the TypeId was derived from.
// Every reflect.Type is backed by an *rtype, so we take any reflect.Type value as
// a template and replace its data pointer.
func (id TypeId) reflectType() reflect.Type {
	tmpl := reflect.TypeFor[struct{}]()

	type eface struct {
		typ, val unsafe.Pointer
	}

	(*eface)(unsafe.Pointer(&tmpl)).val = id.ptr
	return tmpl
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

// TypeRef is a zero sized value that stands in for the type S. Pass it around
// or embed it into a struct when you need to refer to a type as a value.
type TypeRef[S any] struct{}

func Type[T any]() TypeRef[T] {
	return TypeRef[T]{}
}

func (TypeRef[S]) TypeId() TypeId {
	return TypeIdOf[S]()
}

type HasTypeId interface {
	TypeId() TypeId
}
