package models

// User is a registered account. Username doubles as the primary key and the
// login identifier. Token and TokenExpiredAt are either both nil (no active
// session) or both set; the expiry is epoch milliseconds.
type User struct {
	Username       string `json:"username"`
	Name           string `json:"name"`
	PasswordHash   string `json:"-"` // don't expose hash
	Token          *string
	TokenExpiredAt *int64
}

// Contact belongs to exactly one user and is only reachable through it.
type Contact struct {
	ID        string `json:"id"`
	Username  string `json:"-"` // owner
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Address is an owned child of a contact. All location fields are free text.
type Address struct {
	ID         string `json:"id"`
	ContactID  string `json:"-"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}
