package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-unlock/internal/config"
	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/utils"
	"github.com/MKhiriev/go-pass-unlock/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerClientPackage = "X-Client-Package"
	headerRequestID     = "X-Request-Id"
	headerAuthorization = "Authorization"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	clientPackage string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. appCfg.ClientPackage is sent with every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	if appCfg.ClientPackage != "" {
		client.SetHeader(headerClientPackage, appCfg.ClientPackage)
	}

	return &httpServerAdapter{
		client:        client,
		clientPackage: appCfg.ClientPackage,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetSRPAttributes implements [ServerAdapter]. It calls
// GET /users/srp/attributes?email=... and treats 404 as "no SRP registration".
func (h *httpServerAdapter) GetSRPAttributes(ctx context.Context, email string) (*models.SRPAttributes, error) {
	var result models.SRPAttributesResponse

	resp, err := h.request(ctx).
		SetQueryParam("email", email).
		SetResult(&result).
		Get("/users/srp/attributes")
	if err != nil {
		return nil, fmt.Errorf("get srp attributes request: %w", err)
	}
	h.logResponse(ctx, resp)

	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	attrs := result.Attributes
	if attrs.SRPUserID == "" || attrs.SRPSalt == "" || attrs.KEKSalt == "" {
		return nil, fmt.Errorf("%w: incomplete srp attributes", ErrMalformedResponse)
	}
	return &attrs, nil
}

// CreateSRPSession implements [ServerAdapter]. It POSTs A to
// POST /users/srp/create-session.
func (h *httpServerAdapter) CreateSRPSession(ctx context.Context, req models.CreateSRPSessionRequest) (models.CreateSRPSessionResponse, error) {
	var result models.CreateSRPSessionResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/users/srp/create-session")
	if err != nil {
		return models.CreateSRPSessionResponse{}, fmt.Errorf("create srp session request: %w", err)
	}
	h.logResponse(ctx, resp)

	if err = mapHTTPError(resp); err != nil {
		return models.CreateSRPSessionResponse{}, err
	}
	if result.SessionID == "" || result.SRPB == "" {
		return models.CreateSRPSessionResponse{}, fmt.Errorf("%w: missing session id or srpB", ErrMalformedResponse)
	}

	return result, nil
}

// VerifySRPSession implements [ServerAdapter]. It POSTs M1 to
// POST /users/srp/verify-session. The session token, if any, is read from the
// Authorization response header; a second-factor response carries none. When
// the body omits the account id it is recovered from the token claims.
func (h *httpServerAdapter) VerifySRPSession(ctx context.Context, req models.VerifySRPSessionRequest) (models.VerifySRPSessionResponse, error) {
	var result models.VerifySRPSessionResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/users/srp/verify-session")
	if err != nil {
		return models.VerifySRPSessionResponse{}, fmt.Errorf("verify srp session request: %w", err)
	}
	h.logResponse(ctx, resp)

	if err = mapHTTPError(resp); err != nil {
		return models.VerifySRPSessionResponse{}, err
	}
	if result.SRPM2 == "" {
		return models.VerifySRPSessionResponse{}, fmt.Errorf("%w: missing srpM2", ErrMalformedResponse)
	}

	if header := resp.Header().Get(headerAuthorization); header != "" {
		token, parseErr := utils.ParseBearerToken(header)
		if parseErr != nil {
			return models.VerifySRPSessionResponse{}, fmt.Errorf("verify srp session parse bearer token: %w", parseErr)
		}
		result.Token = token

		if result.ID == 0 {
			if id, idErr := utils.ParseUserIDFromToken(token); idErr == nil {
				result.ID = id
			}
		}
	}

	return result, nil
}

// GetKeyAttributes implements [ServerAdapter]. It calls
// GET /users/key-attributes authenticated with proof.Token. The adapter keeps
// no token of its own.
func (h *httpServerAdapter) GetKeyAttributes(ctx context.Context, proof models.SessionProof) (*models.KeyAttributes, error) {
	token := strings.TrimSpace(proof.Token)
	if token == "" {
		return nil, fmt.Errorf("%w: no session token", ErrUnauthorized)
	}

	var result models.KeyAttributes

	resp, err := h.request(ctx).
		SetAuthToken(token).
		SetResult(&result).
		Get("/users/key-attributes")
	if err != nil {
		return nil, fmt.Errorf("get key attributes request: %w", err)
	}
	h.logResponse(ctx, resp)

	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if result.EncryptedKey == "" && result.KEKSalt == "" {
		return nil, nil
	}

	return &result, nil
}

// SendOTT implements [ServerAdapter]. It POSTs to POST /users/ott with the
// login purpose.
func (h *httpServerAdapter) SendOTT(ctx context.Context, email string) error {
	resp, err := h.request(ctx).
		SetBody(models.SendOTTRequest{Email: email, Purpose: models.OTTPurposeLogin}).
		Post("/users/ott")
	if err != nil {
		return fmt.Errorf("send ott request: %w", err)
	}
	h.logResponse(ctx, resp)

	return mapHTTPError(resp)
}

// request starts a request bound to ctx, tagged with the attempt id when ctx
// carries one.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if attemptID, ok := utils.GetAttemptIDFromContext(ctx); ok {
		req.SetHeader(headerRequestID, attemptID)
	}
	return req
}

func (h *httpServerAdapter) logResponse(ctx context.Context, resp *resty.Response) {
	logger.FromContextOr(ctx, h.logger).Debug().
		Str("method", resp.Request.Method).
		Str("path", requestPath(resp.Request.URL)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("api call")
}

// requestPath drops the query string, which may carry the account email.
func requestPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Path
}
