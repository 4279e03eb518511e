package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sjjames020/TranquiliTea/internal/models"
	"github.com/sjjames020/TranquiliTea/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type moodSvcMock struct {
	mock.Mock
}

func (m *moodSvcMock) List(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntryDoc, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]models.MoodEntryDoc)
	return list, args.Error(1)
}

func (m *moodSvcMock) Create(ctx context.Context, userID primitive.ObjectID, moodRating float64, notes string) (*models.MoodEntryDoc, error) {
	args := m.Called(ctx, userID, moodRating, notes)
	e, _ := args.Get(0).(*models.MoodEntryDoc)
	return e, args.Error(1)
}

func (m *moodSvcMock) Update(ctx context.Context, userID primitive.ObjectID, entryID string, moodRating float64, notes string) (*models.MoodEntryDoc, error) {
	args := m.Called(ctx, userID, entryID, moodRating, notes)
	e, _ := args.Get(0).(*models.MoodEntryDoc)
	return e, args.Error(1)
}

func (m *moodSvcMock) Delete(ctx context.Context, userID primitive.ObjectID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

// monta las rutas reales detrás de un middleware que ya resolvió al usuario
func newTestRouter(h *MoodEntryHandler, user *models.UserDoc) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), CtxUser, user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Route("/mood-entries", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func TestMoodEntryHandler_List(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.UserDoc{ID: userID, Email: "ana@example.com"}

	t.Run("returns caller entries in order", func(t *testing.T) {
		svc := new(moodSvcMock)
		entries := []models.MoodEntryDoc{
			{ID: primitive.NewObjectID(), MoodRating: 4, Notes: "ok", Date: time.Now().UTC()},
			{ID: primitive.NewObjectID(), MoodRating: 2, Notes: "bad", Date: time.Now().UTC()},
		}
		svc.On("List", mock.Anything, userID).Return(entries, nil).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodGet, "/mood-entries", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []models.MoodEntryDoc
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, 4.0, got[0].MoodRating)
		assert.Equal(t, "bad", got[1].Notes)
		svc.AssertExpectations(t)
	})

	t.Run("no entries is an empty array, not null", func(t *testing.T) {
		svc := new(moodSvcMock)
		svc.On("List", mock.Anything, userID).Return(nil, nil).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodGet, "/mood-entries", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestMoodEntryHandler_Create(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.UserDoc{ID: userID, Email: "ana@example.com"}

	t.Run("creates entry with server-set id and date", func(t *testing.T) {
		svc := new(moodSvcMock)
		created := &models.MoodEntryDoc{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			MoodRating: 4,
			Notes:      "ok",
			Date:       time.Now().UTC(),
		}
		svc.On("Create", mock.Anything, userID, 4.0, "ok").Return(created, nil).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodPost, "/mood-entries",
			bytes.NewBufferString(`{"moodRating":4,"notes":"ok"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got models.MoodEntryDoc
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, created.ID, got.ID)
		assert.False(t, got.Date.IsZero())
		svc.AssertExpectations(t)
	})

	t.Run("missing rating is rejected before the service", func(t *testing.T) {
		svc := new(moodSvcMock)
		router := newTestRouter(NewMoodEntryHandler(svc), user)

		req := httptest.NewRequest(http.MethodPost, "/mood-entries",
			bytes.NewBufferString(`{"notes":"sin rating"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rating zero is an explicit value", func(t *testing.T) {
		svc := new(moodSvcMock)
		created := &models.MoodEntryDoc{ID: primitive.NewObjectID(), UserID: userID}
		svc.On("Create", mock.Anything, userID, 0.0, "").Return(created, nil).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodPost, "/mood-entries",
			bytes.NewBufferString(`{"moodRating":0}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestMoodEntryHandler_Update(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.UserDoc{ID: userID, Email: "ana@example.com"}
	entryID := primitive.NewObjectID().Hex()

	t.Run("replaces rating and notes", func(t *testing.T) {
		svc := new(moodSvcMock)
		updated := &models.MoodEntryDoc{MoodRating: 2, Notes: "bad"}
		svc.On("Update", mock.Anything, userID, entryID, 2.0, "bad").Return(updated, nil).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodPut, "/mood-entries/"+entryID,
			bytes.NewBufferString(`{"moodRating":2,"notes":"bad"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.MoodEntryDoc
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2.0, got.MoodRating)
		assert.Equal(t, "bad", got.Notes)
		svc.AssertExpectations(t)
	})

	t.Run("entry owned by someone else is not found", func(t *testing.T) {
		svc := new(moodSvcMock)
		svc.On("Update", mock.Anything, userID, entryID, 2.0, "bad").
			Return(nil, service.ErrEntryNotFound).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodPut, "/mood-entries/"+entryID,
			bytes.NewBufferString(`{"moodRating":2,"notes":"bad"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Mood entry not found"}`, rec.Body.String())
	})
}

func TestMoodEntryHandler_Delete(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.UserDoc{ID: userID, Email: "ana@example.com"}
	entryID := primitive.NewObjectID().Hex()

	t.Run("deletes owned entry", func(t *testing.T) {
		svc := new(moodSvcMock)
		svc.On("Delete", mock.Anything, userID, entryID).Return(nil).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodDelete, "/mood-entries/"+entryID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Mood entry deleted successfully"}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("second delete returns not found", func(t *testing.T) {
		svc := new(moodSvcMock)
		svc.On("Delete", mock.Anything, userID, entryID).Return(service.ErrEntryNotFound).Once()

		router := newTestRouter(NewMoodEntryHandler(svc), user)
		req := httptest.NewRequest(http.MethodDelete, "/mood-entries/"+entryID, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
