package envios

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

	"envios/internal/entities"
	retrierconfig "envios/pkg/retrier"
	"envios/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "envios-api"

	// AuthHeader carries the session token to the remote API.
	AuthHeader = "x-auth-token"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 3 * time.Second
	maxRetries      = 3
	randomization   = 0.5
	multiplier      = 2.0
)

const maxErrorBody = 4 << 10

type Gateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
	once    retrier
}

func New(baseURL string, client httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		MaxRetries:      maxRetries,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		once:    retrierconfig.Once{},
	}
}

func (g *Gateway) Login(ctx context.Context, credentials entities.Credentials) (*entities.AuthToken, error) {
	body := credentialsRequest{
		Username: credentials.Username,
		Password: credentials.Password,
	}

	var resp loginResponse
	err := g.executeWithMetrics(ctx, "Login", false, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPost, "/login", "", body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway envios, login: %w", err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("gateway envios, login: empty token: %w", ErrUnauthorized)
	}

	return &entities.AuthToken{
		Token: resp.Token,
		Role:  entities.Role(resp.Role),
	}, nil
}

func (g *Gateway) Register(ctx context.Context, credentials entities.Credentials) error {
	body := credentialsRequest{
		Username: credentials.Username,
		Password: credentials.Password,
	}

	err := g.executeWithMetrics(ctx, "Register", false, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPost, "/register", "", body, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway envios, register: %w", err)
	}
	return nil
}

func (g *Gateway) ListShipments(ctx context.Context, token string) ([]entities.Shipment, error) {
	var resp []envioModel
	err := g.executeWithMetrics(ctx, "ListShipments", true, func(ctx context.Context) error {
		resp = nil
		return g.call(ctx, http.MethodGet, "/envios", token, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway envios, list shipments: %w", err)
	}

	return toDomainList(resp), nil
}

func (g *Gateway) GetShipment(ctx context.Context, token, id string) (*entities.Shipment, error) {
	var resp envioModel
	err := g.executeWithMetrics(ctx, "GetShipment", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, shipmentPath(id), token, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway envios, get shipment %s: %w", id, err)
	}
	if resp.ID == "" {
		resp.ID = id
	}

	return toDomain(&resp), nil
}

// CreateShipment returns nil shipment when the remote API answers without a shipment.
func (g *Gateway) CreateShipment(ctx context.Context, token string, modify entities.ShipmentModify) (*entities.Shipment, error) {
	body := fromDomainCreate(modify)

	var resp *envioModel
	err := g.executeWithMetrics(ctx, "CreateShipment", false, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPost, "/envios", token, body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway envios, create shipment: %w", err)
	}

	return toDomain(resp), nil
}

// UpdateShipment returns nil shipment when the remote API answers without a shipment.
func (g *Gateway) UpdateShipment(ctx context.Context, token string, modify entities.ShipmentModify) (*entities.Shipment, error) {
	if modify.ID == nil || *modify.ID == "" {
		return nil, fmt.Errorf("gateway envios, update shipment: %w", ErrMissingID)
	}
	id := *modify.ID
	body := fromDomainPatch(modify)

	var resp *envioModel
	err := g.executeWithMetrics(ctx, "UpdateShipment", false, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPatch, shipmentPath(id), token, body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway envios, update shipment %s: %w", id, err)
	}

	return toDomain(resp), nil
}

// UpdateStatus returns nil shipment when the remote API answers without a shipment.
func (g *Gateway) UpdateStatus(ctx context.Context, token, id string, status entities.Status) (*entities.Shipment, error) {
	body := estadoPatchRequest{Estado: status.String()}

	var resp *envioModel
	err := g.executeWithMetrics(ctx, "UpdateStatus", false, func(ctx context.Context) error {
		return g.call(ctx, http.MethodPatch, shipmentPath(id)+"/estado", token, body, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway envios, update status %s: %w", id, err)
	}

	return toDomain(resp), nil
}

func (g *Gateway) DeleteShipment(ctx context.Context, token, id string) error {
	err := g.executeWithMetrics(ctx, "DeleteShipment", true, func(ctx context.Context) error {
		return g.call(ctx, http.MethodDelete, shipmentPath(id), token, nil, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway envios, delete shipment %s: %w", id, err)
	}
	return nil
}

// call sends one request and decodes a JSON answer into out (if not nil).
// An empty body leaves out untouched.
func (g *Gateway) call(ctx context.Context, method, path, token string, in, out interface{}) error {
	req, err := g.newRequest(ctx, method, path, token, in)
	if err != nil {
		return err
	}

	resp, err := g.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (g *Gateway) newRequest(ctx context.Context, method, path, token string, in interface{}) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(AuthHeader, token)
	}

	return req, nil
}

func (g *Gateway) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		statusErr := &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(raw)),
		}
		var msg messageResponse
		if json.Unmarshal(raw, &msg) == nil {
			statusErr.Message = msg.Message
		}
		return nil, statusErr
	}

	return resp, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, ErrUnavailable)
}

// executeWithMetrics runs fn through the retrier (idempotent calls only) and
// records latency and retry metrics.
func (g *Gateway) executeWithMetrics(ctx context.Context, method string, idempotent bool, fn func(context.Context) error) error {
	r := g.once
	if idempotent {
		r = g.retrier
	}

	var attempt uint64
	start := time.Now()

	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := responseCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func responseCode(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "CANCELLED"
	}
	return "UNAVAILABLE"
}

func shipmentPath(id string) string {
	return "/envios/" + url.PathEscape(id)
}
