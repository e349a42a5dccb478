package board

// DebugAssertions gates internal invariant checks (mailbox/bitboard
// agreement, make/undo preconditions) that are too expensive to run in
// every build. Panics raised under this flag map to the
// ContractViolation error kind: an engine bug, not a caller input error.
var DebugAssertions = false
