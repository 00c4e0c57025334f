package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/painel-adm/revendas-api/internal/models"
)

// CredentialStore keeps the session token between calls. The reference
// front end persisted it in browser storage; implementations here are
// pluggable.
type CredentialStore interface {
	Set(token string)
	Get() (string, bool)
	Clear()
}

// MemoryStore is an in-process CredentialStore.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Set stores the token.
func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Get returns the token and whether one is present.
func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Clear discards the token.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// APIError is an error response from the panel API.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Code       string `json:"code"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is a typed consumer of the panel API.
type Client struct {
	baseURL string
	http    *http.Client
	store   CredentialStore
}

// New constructs a Client. A nil store defaults to an in-memory one.
func New(baseURL string, httpClient *http.Client, store CredentialStore) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if store == nil {
		store = NewMemoryStore()
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient, store: store}
}

// Store exposes the credential store backing this client.
func (c *Client) Store() CredentialStore {
	return c.store
}

// Login authenticates and stores the returned token on success.
func (c *Client) Login(ctx context.Context, email, senha string) (*models.LoginResponse, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "senha": senha})
	if err != nil {
		return nil, err
	}

	var res models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", bytes.NewReader(payload), false, &res); err != nil {
		return nil, err
	}

	c.store.Set(res.Token)
	return &res, nil
}

// Validate returns the identity bound to the stored token.
func (c *Client) Validate(ctx context.Context) (*models.AdminIdentity, error) {
	var identity models.AdminIdentity
	if err := c.do(ctx, http.MethodGet, "/auth/validate", nil, true, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Logout notifies the server best-effort and always clears the stored token.
// Tokens are stateless, so the local discard is what ends the session.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, true, nil)
	c.store.Clear()
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, authed bool, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, ok := c.store.Get()
		if !ok {
			return &APIError{StatusCode: http.StatusUnauthorized, Message: "token não informado", Code: "MISSING_TOKEN"}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "erro inesperado"}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
