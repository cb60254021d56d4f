// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published when a booking succeeds. It contains
// enough information for downstream consumers to log, notify, or feed
// analytics without querying the primary database.
type TicketIssuedEvent struct {
    EventID     string `json:"event_id"`
    TicketID    uint64 `json:"ticket_id"`
    UserName    string `json:"user_name"`
    ScreeningID uint64 `json:"screening_id"`
    ImdbKey     string `json:"imdb_key"`
    TheaterName string `json:"theater"`
    StartDate   string `json:"date"`
    StartTime   string `json:"start_time"`
    IssuedAt    string `json:"issued_at"`
}
