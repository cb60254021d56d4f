package model

// Customer represents a row in the `customers` table.  Customers are
// keyed by user name and are immutable after creation; the record is
// used only for the credential check when booking.  Only the bcrypt
// hash of the password is stored.
//
// Fields:
//  UserName     – unique user name (primary key).
//  FullName     – display name of the customer.
//  PasswordHash – bcrypt hashed password.
type Customer struct {
    UserName     string // customers.user_name
    FullName     string // customers.full_name
    PasswordHash string // customers.password_hash
}
