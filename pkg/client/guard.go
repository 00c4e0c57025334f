package client

import (
	"context"
	"errors"
	"net/http"
)

// SessionState is the guard's view of the current session.
type SessionState string

const (
	StateAnonymous     SessionState = "anonymous"
	StateAuthenticated SessionState = "authenticated"
)

// SessionGuard mirrors the server-side gate for UX decisions such as
// redirecting to the login screen. It is optimistic: a stored token counts as
// authenticated immediately while the server re-validation runs, and a 401
// downgrades the session by clearing the store. It is not a security
// boundary; the server re-checks every request.
type SessionGuard struct {
	client *Client
}

// NewSessionGuard constructs a guard over the given client.
func NewSessionGuard(client *Client) *SessionGuard {
	return &SessionGuard{client: client}
}

// Check returns the optimistic session state and a channel that reports the
// server-confirmed state once re-validation finishes. Without a stored token
// no request is made and the channel is already resolved.
func (g *SessionGuard) Check(ctx context.Context) (SessionState, <-chan SessionState) {
	confirmed := make(chan SessionState, 1)

	if _, ok := g.client.Store().Get(); !ok {
		confirmed <- StateAnonymous
		close(confirmed)
		return StateAnonymous, confirmed
	}

	go func() {
		defer close(confirmed)
		if _, err := g.client.Validate(ctx); err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
				g.client.Store().Clear()
				confirmed <- StateAnonymous
				return
			}
			// Network or server trouble keeps the optimistic state; the
			// next real request will surface the failure.
			confirmed <- StateAuthenticated
			return
		}
		confirmed <- StateAuthenticated
	}()

	return StateAuthenticated, confirmed
}
