// Package models defines the journal entry types shared by the store,
// the service layer and the transports.
package models

import "time"

// EntryType is the category of a journal entry.
type EntryType string

const (
	EntryTypeWork        EntryType = "work"
	EntryTypeLearning    EntryType = "learning"
	EntryTypeInteresting EntryType = "interesting"
)

// EntryTypes lists the known categories in display order.
var EntryTypes = []EntryType{EntryTypeWork, EntryTypeLearning, EntryTypeInteresting}

// Valid reports whether t is one of the known categories.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeWork, EntryTypeLearning, EntryTypeInteresting:
		return true
	}
	return false
}

// Entry is a persisted journal entry. ID is assigned by the store.
// Type is kept as a plain string: the store accepts any category.
type Entry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Type string    `json:"type"`
	Text string    `json:"text"`
}

// NewEntry carries the caller-supplied fields of an entry to be created.
type NewEntry struct {
	Date time.Time
	Type string
	Text string
}

// DateOnly returns midnight UTC of t's calendar date as seen in UTC.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
