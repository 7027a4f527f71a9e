package anybox

import "fmt"

// Any owns a value of any type. It has no guarantees about which goroutine
// may use the value.
type Any struct {
	erased
}

// SendAny owns a Transferable value. The handle may be moved to another goroutine.
type SendAny struct {
	erased
}

// SyncAny owns a Shareable value. The handle may be used by multiple goroutines.
type SyncAny struct {
	erased
}

func IntoAny[T any](value T) *Any {
	var b Any
	eraseInto(&b.erased, value)
	return &b
}

func IntoSendAny[T Transferable](value T) *SendAny {
	var b SendAny
	eraseInto(&b.erased, value)
	return &b
}

func IntoSyncAny[T Shareable](value T) *SyncAny {
	var b SyncAny
	eraseInto(&b.erased, value)
	return &b
}

// IntoAny moves the value into a new Any handle. b is empty afterward.
func (b *SendAny) IntoAny() *Any {
	var weaker Any
	weaker.moveFrom(&b.erased)
	return &weaker
}

// IntoSend moves the value into a new SendAny handle. b is empty afterward.
func (b *SyncAny) IntoSend() *SendAny {
	var weaker SendAny
	weaker.moveFrom(&b.erased)
	return &weaker
}

// IntoAny moves the value into a new Any handle. b is empty afterward.
func (b *SyncAny) IntoAny() *Any {
	var weaker Any
	weaker.moveFrom(&b.erased)
	return &weaker
}

func (b *Any) String() string {
	return "anybox.Any"
}

func (b *Any) Format(f fmt.State, verb rune) {
	formatLabel(f, b.String())
}

func (b *SendAny) String() string {
	return "anybox.SendAny"
}

func (b *SendAny) Format(f fmt.State, verb rune) {
	formatLabel(f, b.String())
}

func (b *SyncAny) String() string {
	return "anybox.SyncAny"
}

func (b *SyncAny) Format(f fmt.State, verb rune) {
	formatLabel(f, b.String())
}

// formatLabel writes the label of a handle. The erased value is never formatted,
// whatever the verb. Flags, width and precision apply as they would for %s.
func formatLabel(f fmt.State, label string) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), label)
}
