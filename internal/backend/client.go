package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
)

var tracer = otel.GetTracerProvider().Tracer("github.com/hithereguys123/Creative-Clicks/internal/backend")

// Client talks to the studio API over HTTP. It performs no retries of its
// own: a failed call surfaces immediately and retrying is up to the visitor.
// Timeouts are handled here at the transport, not by the flows.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger logger.Logger
}

// New builds a client for the API rooted at baseURL, e.g.
// "http://localhost:8000/api".
func New(baseURL string, timeout time.Duration, log logger.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse studio api url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("studio api url %q missing scheme or host", baseURL)
	}

	return &Client{
		base:   u,
		http:   &http.Client{Timeout: timeout},
		logger: log,
	}, nil
}

// ListMedia fetches the gallery items for one category, in backend order,
// with file paths resolved to absolute URLs.
func (c *Client) ListMedia(ctx context.Context, category domain.Category) ([]domain.MediaItem, error) {
	ctx, span := tracer.Start(ctx, "ListMedia")
	defer span.End()

	endpoint := c.endpoint("/media")
	endpoint += "?category=" + url.QueryEscape(string(category))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build media request: %w", err)
	}

	var items []domain.MediaItem
	if err := c.doJSON(req, &items); err != nil {
		span.RecordError(err)
		return nil, err
	}

	for i := range items {
		items[i].FilePath = c.ResolveMediaURL(items[i].FilePath)
	}
	return items, nil
}

// UploadMedia streams one file to the media upload endpoint as a multipart
// form with its title and category.
func (c *Client) UploadMedia(ctx context.Context, file domain.UploadFile, title string, category domain.Category) error {
	ctx, span := tracer.Start(ctx, "UploadMedia")
	defer span.End()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("file", file.Name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file.Data); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := mw.WriteField("category", string(category)); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := mw.WriteField("title", title); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/media/upload"), pr)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if err := c.doJSON(req, nil); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// ListWorkshops fetches the workshop catalog in backend order.
func (c *Client) ListWorkshops(ctx context.Context) ([]domain.Workshop, error) {
	ctx, span := tracer.Start(ctx, "ListWorkshops")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/workshops"), nil)
	if err != nil {
		return nil, fmt.Errorf("build workshops request: %w", err)
	}

	var workshops []domain.Workshop
	if err := c.doJSON(req, &workshops); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return workshops, nil
}

type registerRequest struct {
	WorkshopID       string `json:"workshop_id"`
	ParticipantName  string `json:"participant_name"`
	ParticipantEmail string `json:"participant_email"`
	Phone            string `json:"phone,omitempty"`
}

type registerResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// Register submits a workshop registration and returns the checkout URL the
// backend issued. An empty URL means the payment session was not created.
func (c *Client) Register(ctx context.Context, workshopID string, draft domain.RegistrationDraft) (string, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	payload := registerRequest{
		WorkshopID:       workshopID,
		ParticipantName:  draft.ParticipantName,
		ParticipantEmail: draft.ParticipantEmail,
		Phone:            draft.Phone,
	}

	var resp registerResponse
	if err := c.postJSON(ctx, "/workshops/"+url.PathEscape(workshopID)+"/register", payload, &resp); err != nil {
		span.RecordError(err)
		return "", err
	}
	return resp.CheckoutURL, nil
}

// CreateBooking submits a booking snapshot. Only the status matters; the
// response body is discarded.
func (c *Client) CreateBooking(ctx context.Context, snapshot domain.BookingSnapshot) error {
	ctx, span := tracer.Start(ctx, "CreateBooking")
	defer span.End()

	if err := c.postJSON(ctx, "/bookings", snapshot, nil); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// SendContact submits a contact form message.
func (c *Client) SendContact(ctx context.Context, msg domain.ContactMessage) error {
	ctx, span := tracer.Start(ctx, "SendContact")
	defer span.End()

	if err := c.postJSON(ctx, "/contact", msg, nil); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// ResolveMediaURL turns a path relative to the API origin into an absolute
// URL. Absolute inputs pass through unchanged.
func (c *Client) ResolveMediaURL(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	origin := url.URL{Scheme: c.base.Scheme, Host: c.base.Host}
	return strings.TrimSuffix(origin.String(), "/") + "/" + strings.TrimPrefix(path, "/")
}

func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.base.String(), "/") + path
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doJSON(req, out)
}

// doJSON executes the request, maps transport and status failures onto the
// domain error taxonomy and decodes the response body into out when given.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("studio api request failed",
			logger.String("method", req.Method),
			logger.String("url", req.URL.String()),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: %s %s: status %d: %s",
			domain.ErrBackendRejected, req.Method, req.URL.Path,
			resp.StatusCode, strings.TrimSpace(string(detail)),
		)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
