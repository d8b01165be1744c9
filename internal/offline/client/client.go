package client

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"resort/config"
	accommodationDto "resort/internal/domains/accommodation/model/dto"
	bookingDto "resort/internal/domains/booking/model/dto"
	packageDto "resort/internal/domains/packages/model/dto"
	"resort/shared/constant"
	"resort/transport/http/response"
)

const maxErrorBody = 4 << 10

type Client interface {
	// Health probes GET /health and returns nil only for a 2xx answer.
	Health(ctx context.Context) error
	// CreateBooking posts a booking. created is false when the server already held the
	// booking for req.OfflineID.
	CreateBooking(ctx context.Context, req bookingDto.CreateBookingRequest) (booking bookingDto.BookingResponse, created bool, err error)
	Accommodations(ctx context.Context) ([]accommodationDto.AccommodationResponse, error)
	// Packages always asks the server to bypass its cache.
	Packages(ctx context.Context) ([]packageDto.PackageResponse, error)
}

type clientImpl struct {
	baseURL     string
	accessToken string
	limit       int
	httpClient  *http.Client
}

func New(cfg *config.Config) Client {
	return NewWithHTTPClient(cfg, &http.Client{
		Timeout: time.Duration(cfg.Agent.RequestTimeoutSeconds) * time.Second,
	})
}

func NewWithHTTPClient(cfg *config.Config, httpClient *http.Client) Client {
	limit := cfg.Agent.CatalogLimit
	if limit <= 0 {
		limit = constant.DefaultValueLimit
	}

	return &clientImpl{
		baseURL:     strings.TrimRight(cfg.Agent.ServerURL, "/"),
		accessToken: cfg.Agent.AccessToken,
		limit:       limit,
		httpClient:  httpClient,
	}
}

func (c *clientImpl) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return apiError(resp)
	}

	return nil
}

func (c *clientImpl) CreateBooking(ctx context.Context, req bookingDto.CreateBookingRequest) (bookingDto.BookingResponse, bool, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return bookingDto.BookingResponse{}, false, fmt.Errorf("error encoding booking: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/v1/bookings", bytes.NewReader(body), nil)
	if err != nil {
		return bookingDto.BookingResponse{}, false, err
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
	default:
		return bookingDto.BookingResponse{}, false, apiError(resp)
	}

	booking, err := decodeData[bookingDto.BookingResponse](resp.Body)
	if err != nil {
		return bookingDto.BookingResponse{}, false, err
	}

	return booking, resp.StatusCode == http.StatusCreated, nil
}

func (c *clientImpl) Accommodations(ctx context.Context) ([]accommodationDto.AccommodationResponse, error) {
	res, err := getList[accommodationDto.GetAccommodationsResponse](ctx, c, "/v1/accommodations", nil)
	if err != nil {
		return nil, err
	}

	return res.Accommodations, nil
}

func (c *clientImpl) Packages(ctx context.Context) ([]packageDto.PackageResponse, error) {
	header := http.Header{}
	header.Set(constant.RequestHeaderCacheControl, constant.CacheControlNoCache)

	res, err := getList[packageDto.GetPackagesResponse](ctx, c, "/v1/packages", header)
	if err != nil {
		return nil, err
	}

	return res.Packages, nil
}

func getList[T any](ctx context.Context, c *clientImpl, path string, header http.Header) (T, error) {
	var zero T

	query := url.Values{}
	query.Set(constant.RequestParamLimit, strconv.Itoa(c.limit))
	query.Set("is_active", "true")

	resp, err := c.do(ctx, http.MethodGet, path+"?"+query.Encode(), nil, header)
	if err != nil {
		return zero, err
	}

	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return zero, apiError(resp)
	}

	return decodeData[T](resp.Body)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	for key, values := range header {
		req.Header[key] = values
	}

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, "application/json")
	}

	if c.accessToken != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}

	return resp, nil
}

func decodeData[T any](body io.Reader) (T, error) {
	var payload response.Data[T]

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		var zero T

		return zero, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if payload.Data == nil {
		var zero T

		return zero, fmt.Errorf("%w: missing data", ErrInvalidResponse)
	}

	return *payload.Data, nil
}

func apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload response.Error
	if json.Unmarshal(raw, &payload) == nil && payload.Error != nil {
		apiErr.Message = *payload.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	return apiErr
}
