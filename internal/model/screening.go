package model

// Screening represents a scheduled showing of a movie in a theater
// (called a "performance" on the HTTP surface).  RemainingSeats starts
// at the theater capacity and is only ever moved by the booking
// engine's guarded decrement; it never goes below zero.
//
// Fields:
//  ID             – primary key identifier (auto increment).
//  ImdbKey        – movie being shown (references movies.imdb_key).
//  TheaterName    – theater hosting the screening (references theaters.name).
//  StartDate      – date of the screening, "YYYY-MM-DD".
//  StartTime      – start time of the screening, "HH:MM".
//  RemainingSeats – seats still available for booking.
type Screening struct {
    ID             uint64 // screenings.id
    ImdbKey        string // screenings.imdb_key
    TheaterName    string // screenings.theater_name
    StartDate      string // screenings.start_date
    StartTime      string // screenings.start_time
    RemainingSeats uint32 // screenings.remaining_seats
}

// ScreeningDetail is a screening joined with its movie, as returned by
// the public performance listing.
type ScreeningDetail struct {
    ID             uint64 `json:"performanceId"`
    StartDate      string `json:"date"`
    StartTime      string `json:"startTime"`
    Title          string `json:"title"`
    ProductionYear uint32 `json:"year"`
    TheaterName    string `json:"theater"`
    RemainingSeats uint32 `json:"remainingSeats"`
}
