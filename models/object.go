package models

// ObjectRecord is a game object entry. Same sequential-id scheme as Game.
type ObjectRecord struct {
	ID          int    `bson:"id" json:"id"`
	Nombre      string `bson:"nombre" json:"nombre"`
	Descripcion string `bson:"descripcion,omitempty" json:"descripcion,omitempty"`
	Fecha       string `bson:"fecha" json:"fecha"`
}
