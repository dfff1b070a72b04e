package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL+"/api", 5*time.Second, newTestLogger(t))
	require.NoError(t, err)
	return client, srv
}

func TestClient_ListMedia_ResolvesFilePaths(t *testing.T) {
	var gotCategory string
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/media", r.URL.Path)
		gotCategory = r.URL.Query().Get("category")

		_ = json.NewEncoder(w).Encode([]domain.MediaItem{
			{ID: "m1", Title: "Sunrise", FilePath: "/uploads/sunrise.jpg", FileType: domain.FileImage},
			{ID: "m2", Title: "Hosted", FilePath: "https://cdn.example.com/clip.mp4", FileType: domain.FileVideo},
		})
	})

	items, err := client.ListMedia(context.Background(), domain.CategoryPortfolio)
	require.NoError(t, err)
	assert.Equal(t, "portfolio", gotCategory)

	require.Len(t, items, 2)
	assert.Equal(t, srv.URL+"/uploads/sunrise.jpg", items[0].FilePath)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", items[1].FilePath)
}

func TestClient_ListMedia_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ListMedia(context.Background(), domain.CategoryTeam)
	require.ErrorIs(t, err, domain.ErrBackendRejected)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_ListMedia_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := New(srv.URL+"/api", time.Second, newTestLogger(t))
	require.NoError(t, err)

	_, err = client.ListMedia(context.Background(), domain.CategoryPortfolio)
	require.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_UploadMedia_MultipartForm(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/media/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "workshop", r.FormValue("category"))
		assert.Equal(t, "Studio session", r.FormValue("title"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "session.jpg", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(data))

		w.WriteHeader(http.StatusCreated)
	})

	err := client.UploadMedia(context.Background(), domain.UploadFile{
		Name:        "session.jpg",
		ContentType: "image/jpeg",
		Data:        strings.NewReader("jpeg-bytes"),
	}, "Studio session", domain.CategoryWorkshop)
	require.NoError(t, err)
}

func TestClient_ListWorkshops(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/workshops", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.Workshop{
			{ID: "w1", Title: "Portrait Basics", Price: 120, DurationDays: 2, MaxParticipants: 8},
			{ID: "w2", Title: "Studio Lighting", Price: 180, DurationDays: 3, MaxParticipants: 6},
		})
	})

	workshops, err := client.ListWorkshops(context.Background())
	require.NoError(t, err)
	require.Len(t, workshops, 2)
	assert.Equal(t, "Portrait Basics", workshops[0].Title)
	assert.Equal(t, "w2", workshops[1].ID)
}

func TestClient_Register_ReturnsCheckoutURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/workshops/w1/register", r.URL.Path)

		var req registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "w1", req.WorkshopID)
		assert.Equal(t, "Dana", req.ParticipantName)
		assert.Equal(t, "dana@example.com", req.ParticipantEmail)
		assert.Empty(t, req.Phone)

		_ = json.NewEncoder(w).Encode(registerResponse{CheckoutURL: "https://pay.example.com/cs_123"})
	})

	checkoutURL, err := client.Register(context.Background(), "w1", domain.RegistrationDraft{
		ParticipantName:  "Dana",
		ParticipantEmail: "dana@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_123", checkoutURL)
}

func TestClient_Register_Rejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"workshop is full"}`, http.StatusConflict)
	})

	_, err := client.Register(context.Background(), "w1", domain.RegistrationDraft{
		ParticipantName:  "Dana",
		ParticipantEmail: "dana@example.com",
	})
	require.ErrorIs(t, err, domain.ErrBackendRejected)
	assert.Contains(t, err.Error(), "workshop is full")
}

func TestClient_CreateBooking_PostsSnapshot(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Alex Reed", got["client_name"])
		assert.Equal(t, "wedding", got["event_type"])

		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateBooking(context.Background(), domain.BookingSnapshot{
		ClientName:     "Alex Reed",
		ClientEmail:    "alex@example.com",
		EventDate:      time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		EventType:      "wedding",
		Services:       []string{"photography"},
		EstimatedHours: 4,
	})
	require.NoError(t, err)
}

func TestClient_SendContact(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contact", r.URL.Path)

		var msg domain.ContactMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "Print order", msg.Subject)

		w.WriteHeader(http.StatusOK)
	})

	err := client.SendContact(context.Background(), domain.ContactMessage{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "Print order",
		Message: "Do you ship framed prints?",
	})
	require.NoError(t, err)
}

func TestClient_ResolveMediaURL(t *testing.T) {
	client, srv := newTestClient(t, http.NotFoundHandler().ServeHTTP)

	assert.Equal(t, srv.URL+"/uploads/a.jpg", client.ResolveMediaURL("uploads/a.jpg"))
	assert.Equal(t, srv.URL+"/uploads/a.jpg", client.ResolveMediaURL("/uploads/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/x.png", client.ResolveMediaURL("https://cdn.example.com/x.png"))
	assert.Empty(t, client.ResolveMediaURL(""))
}
