package service

import (
	"context"
	"errors"
	"time"

	"github.com/sjjames020/TranquiliTea/internal/cache"
	"github.com/sjjames020/TranquiliTea/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrEntryNotFound = errors.New("mood entry not found")

const listCacheTTL = 60 // segundos

// EntryStore es lo que el servicio necesita de la colección moodEntries.
// Todas las operaciones por id van filtradas por dueño en el store mismo.
type EntryStore interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntryDoc, error)
	Insert(ctx context.Context, e *models.MoodEntryDoc) error
	UpdateOwned(ctx context.Context, userID, entryID primitive.ObjectID, moodRating float64, notes string) (*models.MoodEntryDoc, error)
	DeleteOwned(ctx context.Context, userID, entryID primitive.ObjectID) (bool, error)
}

type MoodEntryService struct {
	entries EntryStore
	cache   *cache.Cache
}

func NewMoodEntryService(entries EntryStore, c *cache.Cache) *MoodEntryService {
	return &MoodEntryService{entries: entries, cache: c}
}

func listCacheKey(userID primitive.ObjectID) string {
	return "moodEntries:" + userID.Hex()
}

func (s *MoodEntryService) List(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntryDoc, error) {
	key := listCacheKey(userID)

	var cached []models.MoodEntryDoc
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	list, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetJSON(ctx, key, list, listCacheTTL)
	return list, nil
}

func (s *MoodEntryService) Create(ctx context.Context, userID primitive.ObjectID, moodRating float64, notes string) (*models.MoodEntryDoc, error) {
	e := &models.MoodEntryDoc{
		UserID:     userID,
		MoodRating: moodRating,
		Notes:      notes,
		Date:       time.Now().UTC(),
	}
	if err := s.entries.Insert(ctx, e); err != nil {
		return nil, err
	}

	_ = s.cache.Del(ctx, listCacheKey(userID))
	return e, nil
}

// Update reemplaza rating y notas. Un id que no parsea como ObjectID no
// puede existir, así que cuenta como not found igual que un id ajeno.
func (s *MoodEntryService) Update(ctx context.Context, userID primitive.ObjectID, entryID string, moodRating float64, notes string) (*models.MoodEntryDoc, error) {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, ErrEntryNotFound
	}

	e, err := s.entries.UpdateOwned(ctx, userID, oid, moodRating, notes)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEntryNotFound
	}

	_ = s.cache.Del(ctx, listCacheKey(userID))
	return e, nil
}

func (s *MoodEntryService) Delete(ctx context.Context, userID primitive.ObjectID, entryID string) error {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return ErrEntryNotFound
	}

	deleted, err := s.entries.DeleteOwned(ctx, userID, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}

	_ = s.cache.Del(ctx, listCacheKey(userID))
	return nil
}
