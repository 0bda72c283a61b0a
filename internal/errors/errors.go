package errors

import (
	"encoding/json"
)

// BusinessErr is raised when request conflicts with existing data
type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

// MarshalJSON renders error as {"target": ..., "message": ...}
func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewBusinessErr builds BusinessErr
func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr is raised when requested entry is missing in data source
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// NewEntryNotFoundErr builds EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// PersistenceErr is raised when data source reports no changes for an entry which exists.
// It is never exposed to the client in details.
type PersistenceErr struct {
	message string
}

func (e *PersistenceErr) Error() string {
	return e.message
}

// NewPersistenceErr builds PersistenceErr
func NewPersistenceErr(msg string) *PersistenceErr {
	return &PersistenceErr{message: msg}
}
