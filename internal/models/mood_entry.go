package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodEntryDoc es la colección normalizada `moodEntries`: cada entrada
// es su propio documento con FK al usuario dueño. El dueño no se
// expone por JSON, todas las rutas ya están scopeadas al usuario del token.
type MoodEntryDoc struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"-" bson:"userId"`
	MoodRating float64            `json:"moodRating" bson:"moodRating"`
	Notes      string             `json:"notes" bson:"notes"`
	Date       time.Time          `json:"date" bson:"date"`
}
