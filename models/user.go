package models

// User is an account document. UID is the stable identifier carried in
// tokens and stamped onto game records; it never changes once assigned.
type User struct {
	UID          string `bson:"uid" json:"uid"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	CreatedAt    string `bson:"createdAt" json:"createdAt"`
}
