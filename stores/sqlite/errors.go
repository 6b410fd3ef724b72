// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"errors"
	"fmt"
)

// ErrSetNotFound is returned when a named icon set is not in the database.
var ErrSetNotFound = errors.New("icon set not found")

// ErrDatabase is returned when database operations fail.
type ErrDatabase struct {
	Op  string
	Err error
}

func (e *ErrDatabase) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ErrDatabase) Unwrap() error {
	return e.Err
}

// ErrCorruptNode is returned when stored node rows cannot be rebuilt into a tree.
type ErrCorruptNode struct {
	Icon   string
	NodeID int64
	Msg    string
}

func (e *ErrCorruptNode) Error() string {
	return fmt.Sprintf("icon %s: node %d: %s", e.Icon, e.NodeID, e.Msg)
}
