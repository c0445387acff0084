package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
	"github.com/jeebendu/glassy-property-hunter-97/internal/routes"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

// Session is the authenticated identity handed back by the API.
type Session struct {
	User         models.User
	IDToken      string
	RefreshToken string
}

// Client talks to the identity endpoints. Implementations must honor
// context cancellation; every call carries a deadline.
type Client interface {
	SendOtp(ctx context.Context, email string) (string, error)
	VerifyOtp(ctx context.Context, email, phone, otp, authToken string) (*Session, error)
	Register(ctx context.Context, req dtos.RegisterRequest) (*Session, error)
	GoogleLogin(ctx context.Context, credential string) (*Session, error)
	Logout(ctx context.Context, idToken, refreshToken string) error
}

// APIError carries the machine-readable code from an error response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

const defaultRequestTimeout = 15 * time.Second

type httpClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// Option tweaks the HTTP client construction.
type Option func(*httpClient)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) { c.timeout = d }
}

// WithHTTPClient substitutes the underlying transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *httpClient) { c.http = h }
}

func New(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) SendOtp(ctx context.Context, email string) (string, error) {
	var resp dtos.SendOtpResponse
	err := c.post(ctx, routes.AuthSendOtp, dtos.SendOtpRequest{Email: email}, "", &resp)
	if err != nil {
		return "", err
	}
	if resp.AuthToken == "" {
		return "", errors.New("empty authToken in sendOtp response")
	}
	return resp.AuthToken, nil
}

func (c *httpClient) VerifyOtp(ctx context.Context, email, phone, otp, authToken string) (*Session, error) {
	req := dtos.LoginRequest{
		Email:     email,
		Phone:     phone,
		Otp:       otp,
		AuthToken: authToken,
	}
	var resp dtos.SessionResponse
	if err := c.post(ctx, routes.AuthLogin, req, "", &resp); err != nil {
		return nil, err
	}
	return sessionFromResponse(&resp)
}

func (c *httpClient) Register(ctx context.Context, req dtos.RegisterRequest) (*Session, error) {
	var resp dtos.SessionResponse
	if err := c.post(ctx, routes.AuthRegister, req, "", &resp); err != nil {
		return nil, err
	}
	return sessionFromResponse(&resp)
}

func (c *httpClient) GoogleLogin(ctx context.Context, credential string) (*Session, error) {
	var resp dtos.SessionResponse
	if err := c.post(ctx, routes.AuthGoogle, dtos.GoogleLoginRequest{Credential: credential}, "", &resp); err != nil {
		return nil, err
	}
	return sessionFromResponse(&resp)
}

func (c *httpClient) Logout(ctx context.Context, idToken, refreshToken string) error {
	// Logout is best effort; the server treats unknown tokens as a no-op.
	return c.post(ctx, routes.AuthLogout, dtos.LogoutRequest{RefreshToken: refreshToken}, idToken, nil)
}

// ---------------------------------------------------------------------
// HTTP plumbing
// ---------------------------------------------------------------------

func (c *httpClient) post(ctx context.Context, path string, body any, bearer string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var body utils.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Code: "unknown", Message: resp.Status}
	}
	return &APIError{StatusCode: resp.StatusCode, Code: body.Code, Message: body.Message}
}

func sessionFromResponse(resp *dtos.SessionResponse) (*Session, error) {
	if resp.IDToken == "" {
		return nil, errors.New("missing id_token in session response")
	}
	return &Session{
		User:         resp.User,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}
