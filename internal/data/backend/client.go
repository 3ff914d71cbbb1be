// Package backend is the typed boundary to the cinema REST backend that owns
// theaters, rooms, showtimes, movies and bookings.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	defaultRetryBase   = 200 * time.Millisecond
	defaultRetryCap    = 1200 * time.Millisecond
	maxErrorBody       = 8 << 10
)

// API is what the booking flow needs from the cinema backend.
type API interface {
	ListShowtimes(ctx context.Context, filter ShowtimeFilter) ([]entity.Showtime, error)
	GetShowtime(ctx context.Context, id int64) (*entity.Showtime, error)
	GetOccupiedSeats(ctx context.Context, showtimeID int64) ([]int, error)
	CreateBooking(ctx context.Context, dto entity.CreateBookingDto) (*entity.Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]entity.Booking, error)
	ListMovies(ctx context.Context) ([]entity.Movie, error)
	GetMovie(ctx context.Context, id int64) (*entity.Movie, error)
	ListTheaters(ctx context.Context) ([]entity.Theater, error)
}

type ShowtimeFilter struct {
	MovieID   int64
	TheaterID int64
	Date      string // YYYY-MM-DD
}

func (f ShowtimeFilter) query() url.Values {
	q := url.Values{}
	if f.MovieID > 0 {
		q.Set("movieId", strconv.FormatInt(f.MovieID, 10))
	}
	if f.TheaterID > 0 {
		q.Set("theaterId", strconv.FormatInt(f.TheaterID, 10))
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	return q
}

// Client wraps HTTP access to the cinema backend. Reads are retried on
// network errors and 5xx/429 responses; booking creation is sent once.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	maxAttempts int
	retryBase   time.Duration
	retryCap    time.Duration
	log         *zap.Logger
}

// NewClient creates a backend client. If httpClient is nil, a client with the
// configured timeout is used.
func NewClient(config utils.BackendConfig, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	maxAttempts := config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(config.URL, "/"),
		token:       config.Token,
		maxAttempts: maxAttempts,
		retryBase:   defaultRetryBase,
		retryCap:    defaultRetryCap,
		log:         log.With(zap.String("client", "backend")),
	}
}

func (c *Client) ListShowtimes(ctx context.Context, filter ShowtimeFilter) ([]entity.Showtime, error) {
	const resource = "showtimes"

	var payloads []showtimePayload
	if err := c.getJSON(ctx, resource, "/sessions-cinema", filter.query(), &payloads); err != nil {
		return nil, err
	}

	showtimes := make([]entity.Showtime, 0, len(payloads))
	for i := range payloads {
		res := fmt.Sprintf("%s[%d]", resource, i)
		if err := validatePayload(res, &payloads[i]); err != nil {
			return nil, err
		}
		st, err := payloads[i].toEntity(res)
		if err != nil {
			return nil, err
		}
		showtimes = append(showtimes, *st)
	}
	return showtimes, nil
}

func (c *Client) GetShowtime(ctx context.Context, id int64) (*entity.Showtime, error) {
	if id < 1 {
		return nil, errors.New("showtime id is required")
	}
	const resource = "showtime"

	var payload showtimePayload
	if err := c.getJSON(ctx, resource, fmt.Sprintf("/sessions-cinema/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	if err := validatePayload(resource, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(resource)
}

func (c *Client) GetOccupiedSeats(ctx context.Context, showtimeID int64) ([]int, error) {
	if showtimeID < 1 {
		return nil, errors.New("showtime id is required")
	}
	const resource = "occupied seats"

	var seats []int
	if err := c.getJSON(ctx, resource, fmt.Sprintf("/sessions-cinema/%d/occupied-seats", showtimeID), nil, &seats); err != nil {
		return nil, err
	}
	for i, n := range seats {
		if n < 1 {
			return nil, &DecodeError{
				Resource: resource,
				Field:    fmt.Sprintf("[%d]", i),
				Reason:   fmt.Sprintf("seat number %d out of range", n),
			}
		}
	}
	return seats, nil
}

func (c *Client) CreateBooking(ctx context.Context, dto entity.CreateBookingDto) (*entity.Booking, error) {
	const resource = "booking"

	var payload bookingPayload
	if err := c.postJSON(ctx, resource, "/bookings", dto, &payload); err != nil {
		return nil, err
	}
	if err := validatePayload(resource, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(resource)
}

func (c *Client) ListUserBookings(ctx context.Context, userID int64) ([]entity.Booking, error) {
	if userID < 1 {
		return nil, errors.New("user id is required")
	}
	const resource = "bookings"

	var payloads []bookingPayload
	if err := c.getJSON(ctx, resource, fmt.Sprintf("/bookings/user/%d", userID), nil, &payloads); err != nil {
		return nil, err
	}

	bookings := make([]entity.Booking, 0, len(payloads))
	for i := range payloads {
		res := fmt.Sprintf("%s[%d]", resource, i)
		if err := validatePayload(res, &payloads[i]); err != nil {
			return nil, err
		}
		booking, err := payloads[i].toEntity(res)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

func (c *Client) ListMovies(ctx context.Context) ([]entity.Movie, error) {
	const resource = "movies"

	var payloads []moviePayload
	if err := c.getJSON(ctx, resource, "/movies", nil, &payloads); err != nil {
		return nil, err
	}

	movies := make([]entity.Movie, 0, len(payloads))
	for i := range payloads {
		res := fmt.Sprintf("%s[%d]", resource, i)
		if err := validatePayload(res, &payloads[i]); err != nil {
			return nil, err
		}
		movie, err := payloads[i].toEntity(res)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}
	return movies, nil
}

func (c *Client) GetMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	if id < 1 {
		return nil, errors.New("movie id is required")
	}
	const resource = "movie"

	var payload moviePayload
	if err := c.getJSON(ctx, resource, fmt.Sprintf("/movies/%d", id), nil, &payload); err != nil {
		return nil, err
	}
	if err := validatePayload(resource, &payload); err != nil {
		return nil, err
	}
	return payload.toEntity(resource)
}

func (c *Client) ListTheaters(ctx context.Context) ([]entity.Theater, error) {
	const resource = "theaters"

	var payloads []theaterPayload
	if err := c.getJSON(ctx, resource, "/theaters", nil, &payloads); err != nil {
		return nil, err
	}

	theaters := make([]entity.Theater, 0, len(payloads))
	for i := range payloads {
		res := fmt.Sprintf("%s[%d]", resource, i)
		if err := validatePayload(res, &payloads[i]); err != nil {
			return nil, err
		}
		theaters = append(theaters, *payloads[i].toEntity())
	}
	return theaters, nil
}

func (c *Client) getJSON(ctx context.Context, resource, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, resource, nil, c.maxAttempts, out)
}

func (c *Client) postJSON(ctx context.Context, resource, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", resource, err)
	}
	// a retried POST could book the same seats twice
	return c.do(ctx, http.MethodPost, c.baseURL+path, resource, body, 1, out)
}

func (c *Client) do(ctx context.Context, method, endpoint, resource string, body []byte, maxAttempts int, out any) error {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			if c.shouldRetryNetworkError(err) && attempt < maxAttempts {
				c.log.Warn("Backend request failed, retrying",
					zap.String("method", method),
					zap.String("endpoint", endpoint),
					zap.Int("attempt", attempt),
					zap.Error(err),
				)
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return fmt.Errorf("%s %s: %w", method, endpoint, err)
		}

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
			_ = res.Body.Close()

			apiErr := &APIError{
				StatusCode: res.StatusCode,
				Status:     res.Status,
				Endpoint:   endpoint,
				Body:       strings.TrimSpace(string(snippet)),
			}
			if c.shouldRetryStatus(res.StatusCode) && attempt < maxAttempts {
				c.log.Warn("Backend returned retryable status",
					zap.String("method", method),
					zap.String("endpoint", endpoint),
					zap.Int("status", res.StatusCode),
					zap.Int("attempt", attempt),
				)
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return apiErr
		}

		err = json.NewDecoder(res.Body).Decode(out)
		_ = res.Body.Close()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &DecodeError{Resource: resource, Reason: "empty response body", Err: err}
			}
			return jsonDecodeError(resource, err)
		}

		c.log.Debug("Backend request completed",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("attempt", attempt),
		)
		return nil
	}

	return errors.New("request failed after retries")
}

func (c *Client) shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) waitRetry(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.retryDelay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryDelay doubles from retryBase on every attempt, capped at retryCap.
func (c *Client) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	limit := c.retryCap
	if limit <= 0 {
		limit = defaultRetryCap
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= limit/2 {
			return limit
		}
		delay *= 2
	}
	return min(delay, limit)
}
