// Package anybox erases the static type of a value behind an owning handle.
//
// A value is converted into one of six handle types. Any, SendAny and SyncAny
// differ in what they promise about goroutines: an Any handle makes no promise,
// a SendAny holds a Transferable value and a SyncAny holds a Shareable value.
// CloneAny, CloneSendAny and CloneSyncAny additionally hold a Cloner and can
// be cloned without knowing the type of the value.
//
// The value is recovered with DowncastRefUnchecked, DowncastMutUnchecked or
// DowncastUnchecked. None of them check the type. The caller needs to know it,
// usually by keeping the TypeId of every handle next to it:
//
//	values := map[anybox.TypeId]*anybox.Any{}
//	values[anybox.TypeIdOf[Config]()] = anybox.IntoAny(config)
//
//	config := anybox.DowncastRefUnchecked[Config](values[anybox.TypeIdOf[Config]()])
package anybox
