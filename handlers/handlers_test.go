package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"notes-api/audit"
	"notes-api/cache"
	appmw "notes-api/middleware"
	"notes-api/models"
	auth_serv "notes-api/service/auth"
	notes_serv "notes-api/service/notes"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return nil, models.ErrEmailTaken
	}
	f.nextID++
	user := &models.User{ID: f.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.users[email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

type fakeNoteRepo struct {
	mu     sync.Mutex
	notes  map[int]models.Note
	nextID int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[int]models.Note)}
}

func (f *fakeNoteRepo) ListByUser(_ context.Context, userID int) ([]models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var listed []models.Note
	for _, note := range f.notes {
		if note.UserID == userID {
			listed = append(listed, note)
		}
	}
	return listed, nil
}

func (f *fakeNoteRepo) GetByIDAndUser(_ context.Context, noteID, userID int) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, ok := f.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, models.ErrNotFound
	}
	return &note, nil
}

func (f *fakeNoteRepo) Create(_ context.Context, userID int, title, content string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	created := time.Now().Add(-time.Minute).Truncate(time.Second)
	note := models.Note{
		ID:        f.nextID,
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: created,
		UpdatedAt: created,
	}
	f.notes[note.ID] = note
	return &note, nil
}

func (f *fakeNoteRepo) Update(_ context.Context, noteID, userID int, title, content *string) (*models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	note, ok := f.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, models.ErrNotFound
	}
	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}
	note.UpdatedAt = time.Now()
	f.notes[noteID] = note
	return &note, nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, noteID, userID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if note, ok := f.notes[noteID]; ok && note.UserID == userID {
		delete(f.notes, noteID)
	}
	return nil
}

func (f *fakeNoteRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notes)
}

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *recordingAuditor) Record(_ context.Context, event audit.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	return nil
}

func (a *recordingAuditor) Close() error { return nil }

type testEnv struct {
	router   *chi.Mux
	noteRepo *fakeNoteRepo
	auditor  *recordingAuditor
}

func newTestEnv() *testEnv {
	logg := zerolog.Nop()

	authServ := auth_serv.NewDefaultService(newFakeUserRepo(), []byte("test-secret"), time.Hour, logg)
	noteRepo := newFakeNoteRepo()
	auditor := &recordingAuditor{}
	notesServ := notes_serv.NewDefaultService(noteRepo, cache.NewMemory(), auditor, logg)

	authHandler := NewAuthHandler(authServ, logg)
	noteHandler := NewNoteHandler(notesServ, logg)

	router := chi.NewRouter()
	router.Post("/api/register", authHandler.Register)
	router.Post("/api/login", authHandler.Login)

	router.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(authServ))
		r.Post("/api/logout", authHandler.Logout)
		r.Get("/api/notes", noteHandler.Index)
		r.Get("/api/notes/{id}", noteHandler.Show)
		r.Post("/api/notes", noteHandler.Store)
		r.Put("/api/notes/{id}", noteHandler.Update)
		r.Delete("/api/notes/{id}", noteHandler.Destroy)
	})

	return &testEnv{router: router, noteRepo: noteRepo, auditor: auditor}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func jsonUnmarshal(rr *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rr.Body.Bytes(), v)
}

func (e *testEnv) registerAndLogin(t *testing.T, email string) string {
	t.Helper()

	rr := e.do(t, "POST", "/api/register", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = e.do(t, "POST", "/api/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}
