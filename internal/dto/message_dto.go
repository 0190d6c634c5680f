package dto

import "github.com/google/uuid"

// PublishAnalyzeEntryMessage is the queue payload that triggers the
// async emotion analysis pipeline for an entry.
type PublishAnalyzeEntryMessage struct {
	EntryId uuid.UUID `json:"entry_id"`
}
