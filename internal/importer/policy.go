package importer

import (
	"fmt"
	"strings"
)

// ConflictPolicy decides what happens when a salon with the same slug exists.
type ConflictPolicy int

const (
	// Skip leaves the existing row alone.
	Skip ConflictPolicy = iota
	// Overwrite replaces the existing row's columns.
	Overwrite
	// AlwaysInsert never looks; repeated runs duplicate salons.
	AlwaysInsert
)

func (p ConflictPolicy) String() string {
	switch p {
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	case AlwaysInsert:
		return "always-insert"
	}
	return fmt.Sprintf("ConflictPolicy(%d)", int(p))
}

func ParsePolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip", "":
		return Skip, nil
	case "overwrite", "upsert":
		return Overwrite, nil
	case "always-insert", "always", "insert":
		return AlwaysInsert, nil
	}
	return Skip, fmt.Errorf("unknown conflict policy %q", s)
}
