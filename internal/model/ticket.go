package model

// Ticket represents a row in the `tickets` table.  A ticket is created
// only by a successful booking and is never mutated or deleted.
//
// Fields:
//  ID          – primary key identifier (auto increment).
//  UserName    – customer the ticket belongs to.
//  ScreeningID – screening the ticket is for.
type Ticket struct {
    ID          uint64 // tickets.id
    UserName    string // tickets.user_name
    ScreeningID uint64 // tickets.screening_id
}

// TicketSummary groups a user's tickets by screening, joined with the
// screening's movie and theater.  It is the unit returned by the
// per-user ticket history.
type TicketSummary struct {
    ScreeningID    uint64 `json:"performanceId"`
    StartDate      string `json:"date"`
    StartTime      string `json:"startTime"`
    TheaterName    string `json:"theater"`
    Title          string `json:"title"`
    ProductionYear uint32 `json:"year"`
    TicketCount    uint32 `json:"nbrOfTickets"`
}
