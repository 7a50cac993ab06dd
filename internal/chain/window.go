package chain

// MaxWindow bounds how many trailers a single statistics scan may cover.
const MaxWindow = 768

// ResolveWindow computes the trailer range to fetch for a requested block
// position. Non-negative positions are absolute: the window ends at the
// position and extends back at most MaxWindow records, clamped at genesis.
// Negative positions are relative ("the last N blocks"); the start is left
// negative for the trailer source to resolve against its current head.
func ResolveWindow(position int64) (start int64, count uint64) {
	switch {
	case position < 0:
		return position, uint64(-position)
	case position < MaxWindow:
		return 0, uint64(position) + 1
	default:
		return position - MaxWindow + 1, MaxWindow
	}
}
