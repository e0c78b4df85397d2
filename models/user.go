package models

import "time"

// User roles as stored in the users collection.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents a platform account. The recommendation engine only reads
// customer accounts; providers carry their profile in the providers collection.
type User struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Email             string    `bson:"email" json:"email,omitempty"`
	Role              string    `bson:"role" json:"role"`                           // "customer", "provider" or "admin"
	Active            bool      `bson:"active" json:"active"`                       // false once the account is deactivated
	Address           string    `bson:"address" json:"address,omitempty"`           // free text, never geocoded
	PreferredServices string    `bson:"preferredServices" json:"preferredServices"` // comma separated tags, e.g. "plumbing, deep cleaning"
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// PreferenceTags splits the free-text preferred services into trimmed,
// lower-cased keywords. Empty entries are dropped.
func (u *User) PreferenceTags() []string {
	return SplitTags(u.PreferredServices)
}
