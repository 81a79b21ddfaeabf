package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamAddressLookup - стрим по умолчанию для событий поиска адресов
const StreamAddressLookup = "stream:address:lookup"

// LookupEvent - событие о выполненном поиске по индексу
type LookupEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	RequestID   string    `json:"request_id,omitempty"`
	Zipcode     string    `json:"zipcode"`
	Found       bool      `json:"found"`
	ResultCount int       `json:"result_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewLookupEvent создает событие для результата поиска из resultCount адресов
func NewLookupEvent(requestID, zipcode string, resultCount int) LookupEvent {
	return LookupEvent{
		EventID:     uuid.New(),
		RequestID:   requestID,
		Zipcode:     zipcode,
		Found:       resultCount > 0,
		ResultCount: resultCount,
		OccurredAt:  time.Now().UTC(),
	}
}
