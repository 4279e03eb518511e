package repository

import (
	"context"

	"github.com/sjjames020/TranquiliTea/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MoodEntryRepository struct {
	col *mongo.Collection
}

func NewMoodEntryRepository(db *mongo.Database) *MoodEntryRepository {
	return &MoodEntryRepository{col: db.Collection("moodEntries")}
}

// ListByUser devuelve las entradas del usuario en orden de creación
// (fecha ascendente, _id como desempate).
func (r *MoodEntryRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntryDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MoodEntryDoc
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MoodEntryRepository) Insert(ctx context.Context, e *models.MoodEntryDoc) error {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

// UpdateOwned reemplaza rating y notas de una entrada, solo si pertenece
// al usuario: el filtro lleva _id y userId juntos. Devuelve nil si no
// hay match (no existe o es de otro usuario); fecha y dueño no se tocan.
func (r *MoodEntryRepository) UpdateOwned(ctx context.Context, userID, entryID primitive.ObjectID, moodRating float64, notes string) (*models.MoodEntryDoc, error) {
	var e models.MoodEntryDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": entryID, "userId": userID},
		bson.M{"$set": bson.M{"moodRating": moodRating, "notes": notes}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteOwned borra una entrada del usuario. Devuelve false si no había
// match (mismo contrato que UpdateOwned).
func (r *MoodEntryRepository) DeleteOwned(ctx context.Context, userID, entryID primitive.ObjectID) (bool, error) {
	err := r.col.FindOneAndDelete(ctx,
		bson.M{"_id": entryID, "userId": userID},
	).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
