package models

// Game is one recorded play session. The numeric id is assigned by the
// application in strictly increasing order and is unrelated to the document
// id MongoDB assigns on insert. Field names are the wire format consumed by
// the existing clients, hence the Spanish json keys.
type Game struct {
	ID       int     `bson:"id" json:"id"`
	UserID   string  `bson:"userId" json:"userId"`
	Fecha    string  `bson:"fecha" json:"fecha"`
	Segundos float64 `bson:"segundos" json:"segundos"`
}
