package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GoogleIdentity is what the auth service needs from a verified Google
// ID token.
type GoogleIdentity struct {
	Email string
	Name  string
}

// GoogleVerifier is the narrow contract around Google's token
// verification service.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleIdentity, error)
}

// GoogleTokenInfoClient verifies ID tokens against Google's tokeninfo
// endpoint.
type GoogleTokenInfoClient struct {
	clientID string
	endpoint string
	client   *http.Client
}

func NewGoogleTokenInfoClient(clientID string) *GoogleTokenInfoClient {
	return &GoogleTokenInfoClient{
		clientID: clientID,
		endpoint: "https://oauth2.googleapis.com/tokeninfo",
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GoogleTokenInfoClient) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.endpoint+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("google rejected the token")
	}

	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Aud   string `json:"aud"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Email == "" {
		return nil, errors.New("token has no email claim")
	}
	if g.clientID != "" && payload.Aud != g.clientID {
		return nil, errors.New("token was issued for another client")
	}

	return &GoogleIdentity{Email: payload.Email, Name: payload.Name}, nil
}
