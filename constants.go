package eep

import "github.com/fitzgen/eep/internal/wire"

// EntrySize is the fixed, constant byte size of one encoded Entry,
// regardless of T. See internal/wire for the exact layout.
const EntrySize = wire.EntrySize
