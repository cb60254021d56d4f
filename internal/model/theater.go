package model

// Theater represents a row in the `theaters` table.  Theaters are
// identified by their name and are immutable after creation.  The
// capacity is the number of seats every screening scheduled in the
// theater starts out with.
//
// Fields:
//  Name     – unique theater name (primary key).
//  Capacity – total number of seats; always positive.
type Theater struct {
    Name     string // theaters.name
    Capacity uint32 // theaters.capacity
}
