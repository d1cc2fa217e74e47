package db

import "fmt"

// DuplicateIDError means a record ID occurs more than once within a
// collection across the loaded datasets.
type DuplicateIDError struct {
	Collection string
	ID         string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate ID %s in %s", e.ID, e.Collection)
}

// UnknownRecordError means a lookup referenced an ID absent from a
// collection.
type UnknownRecordError struct {
	Collection string
	ID         string
}

func (e *UnknownRecordError) Error() string {
	return fmt.Sprintf("no record %s in %s", e.ID, e.Collection)
}
