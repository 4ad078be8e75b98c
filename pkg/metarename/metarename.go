// Package metarename derives informative filenames for photo and video
// files from their embedded metadata and moves, copies, or symlinks them
// into place.
package metarename

import "fmt"

// Op is the file operation applied once a name has been derived.
type Op string

const (
	Move    Op = "move"
	Copy    Op = "copy"
	Symlink Op = "symlink"
)

// ParseOp maps a flag value to an Op.
func ParseOp(s string) (Op, error) {
	switch Op(s) {
	case Move, Copy, Symlink:
		return Op(s), nil
	}
	return "", fmt.Errorf("unknown operation %q (want move, copy or symlink)", s)
}

// Config holds configuration for a rename run.
type Config struct {
	// InDir is the directory to scan for candidate files.
	InDir string
	// File selects a single file instead of a directory.
	File string
	// OutDir is the destination root; empty means rename in place.
	OutDir string

	Recurse bool
	// KeepTree preserves the InDir-relative layout under OutDir.
	KeepTree bool
	DryRun   bool

	Op Op
}
