package editor

// ModeKind selects which editing mode is active.
type ModeKind uint8

const (
	ModeNormal ModeKind = iota
	ModeInsert
	ModeCommand
	ModeFind
	ModeGoto
)

// String returns the mode name shown in the status line.
func (k ModeKind) String() string {
	switch k {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeCommand:
		return "command"
	case ModeFind:
		return "find"
	case ModeGoto:
		return "goto"
	default:
		return "unknown"
	}
}

// Mode is a tagged union: Kind selects the mode, and only that mode's
// fields are meaningful. Switching modes replaces the whole value, so
// no stale modal state survives a transition.
type Mode struct {
	Kind ModeKind

	// Count is Normal's pending numeric prefix; 0 means none.
	Count int

	// Extend makes Insert grow selections instead of collapsing them.
	Extend bool

	// Input is Command's line under construction, without the ':'.
	Input string

	// Query, Matches and Selected hold Find's incremental state.
	Query    string
	Matches  []string
	Selected int
}
