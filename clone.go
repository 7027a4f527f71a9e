package anybox

import (
	"fmt"
	"unsafe"
)

// Cloner is implemented by types that know how to duplicate themselves.
// Whether a clone is shallow or deep is up to the type, the handles in this
// package never share or copy anything on their own.
type Cloner[T any] interface {
	Clone() T
}

type CloneTransferable[T any] interface {
	Transferable
	Cloner[T]
}

type CloneShareable[T any] interface {
	Shareable
	Cloner[T]
}

// cloneTable holds the clone hooks of a concrete type, one for each handle
// variant that the type qualifies for. Hooks for variants the type does not
// qualify for stay nil.
type cloneTable struct {
	plain func(ptr unsafe.Pointer) *CloneAny
	send  func(ptr unsafe.Pointer) *CloneSendAny
	sync  func(ptr unsafe.Pointer) *CloneSyncAny
}

// Each hook converts the clone through the constructor of its own variant,
// so the compiler checks the capability of every duplicate again.

func cloneAnyHook[T Cloner[T]](ptr unsafe.Pointer) *CloneAny {
	return IntoCloneAny((*(*T)(ptr)).Clone())
}

func cloneSendAnyHook[T CloneTransferable[T]](ptr unsafe.Pointer) *CloneSendAny {
	return IntoCloneSendAny((*(*T)(ptr)).Clone())
}

func cloneSyncAnyHook[T CloneShareable[T]](ptr unsafe.Pointer) *CloneSyncAny {
	return IntoCloneSyncAny((*(*T)(ptr)).Clone())
}

// CloneAny is an Any that can be cloned without knowing the type of the value.
type CloneAny struct {
	erased
	hooks cloneTable
}

// CloneSendAny is a SendAny that can be cloned without knowing the type of the value.
type CloneSendAny struct {
	erased
	hooks cloneTable
}

// CloneSyncAny is a SyncAny that can be cloned without knowing the type of the value.
type CloneSyncAny struct {
	erased
	hooks cloneTable
}

func IntoCloneAny[T Cloner[T]](value T) *CloneAny {
	b := CloneAny{
		hooks: cloneTable{
			plain: cloneAnyHook[T],
		},
	}

	eraseInto(&b.erased, value)
	return &b
}

func IntoCloneSendAny[T CloneTransferable[T]](value T) *CloneSendAny {
	b := CloneSendAny{
		hooks: cloneTable{
			plain: cloneAnyHook[T],
			send:  cloneSendAnyHook[T],
		},
	}

	eraseInto(&b.erased, value)
	return &b
}

func IntoCloneSyncAny[T CloneShareable[T]](value T) *CloneSyncAny {
	b := CloneSyncAny{
		hooks: cloneTable{
			plain: cloneAnyHook[T],
			send:  cloneSendAnyHook[T],
			sync:  cloneSyncAnyHook[T],
		},
	}

	eraseInto(&b.erased, value)
	return &b
}

// Clone returns a new handle holding a clone of the erased value.
func (b *CloneAny) Clone() *CloneAny {
	return b.hooks.plain(b.ptr)
}

// Clone returns a new handle holding a clone of the erased value.
func (b *CloneSendAny) Clone() *CloneSendAny {
	return b.hooks.send(b.ptr)
}

// Clone returns a new handle holding a clone of the erased value.
func (b *CloneSyncAny) Clone() *CloneSyncAny {
	return b.hooks.sync(b.ptr)
}

// IntoAny drops the ability to clone. b is empty afterward.
func (b *CloneAny) IntoAny() *Any {
	var plain Any
	plain.moveFrom(&b.erased)
	return &plain
}

// IntoCloneAny moves the value into a new CloneAny handle. b is empty afterward.
func (b *CloneSendAny) IntoCloneAny() *CloneAny {
	weaker := CloneAny{hooks: b.hooks}
	weaker.moveFrom(&b.erased)
	return &weaker
}

// IntoSend drops the ability to clone. b is empty afterward.
func (b *CloneSendAny) IntoSend() *SendAny {
	var plain SendAny
	plain.moveFrom(&b.erased)
	return &plain
}

// IntoCloneSend moves the value into a new CloneSendAny handle. b is empty afterward.
func (b *CloneSyncAny) IntoCloneSend() *CloneSendAny {
	weaker := CloneSendAny{hooks: b.hooks}
	weaker.moveFrom(&b.erased)
	return &weaker
}

// IntoCloneAny moves the value into a new CloneAny handle. b is empty afterward.
func (b *CloneSyncAny) IntoCloneAny() *CloneAny {
	weaker := CloneAny{hooks: b.hooks}
	weaker.moveFrom(&b.erased)
	return &weaker
}

// IntoSync drops the ability to clone. b is empty afterward.
func (b *CloneSyncAny) IntoSync() *SyncAny {
	var plain SyncAny
	plain.moveFrom(&b.erased)
	return &plain
}

func (b *CloneAny) String() string {
	return "anybox.CloneAny"
}

func (b *CloneAny) Format(f fmt.State, verb rune) {
	formatLabel(f, b.String())
}

func (b *CloneSendAny) String() string {
	return "anybox.CloneSendAny"
}

func (b *CloneSendAny) Format(f fmt.State, verb rune) {
	formatLabel(f, b.String())
}

func (b *CloneSyncAny) String() string {
	return "anybox.CloneSyncAny"
}

func (b *CloneSyncAny) Format(f fmt.State, verb rune) {
	formatLabel(f, b.String())
}
