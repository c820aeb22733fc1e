package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"vastra-store/internal/logger"
	"vastra-store/internal/session"
	"vastra-store/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Profile is the user record returned on successful verification.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Client drives the one-time-passcode login flow against the auth
// service. The passcode is verified server-side only; on success the
// bearer credential and profile are written to local storage, which is
// what flips the session gate to authenticated.
type Client struct {
	baseURL string
	http    *http.Client
	kv      storage.Store
	onLogin func()
}

func NewClient(baseURL string, timeout time.Duration, kv storage.Store) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		kv:      kv,
	}
}

// SetLoginHook registers a callback fired after a successful
// verification, once the credential is stored. The cart engine hangs
// its deferred-action replay here.
func (c *Client) SetLoginHook(fn func()) {
	c.onLogin = fn
}

// RequestOTP asks the auth service to send a passcode to the address.
func (c *Client) RequestOTP(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/auth/request-otp", map[string]string{"email": email}, &out); err != nil {
		return fmt.Errorf("%w: %v", ErrOTPFailed, err)
	}
	return nil
}

// VerifyOTP exchanges the emailed passcode for a bearer credential and
// stores it along with the user profile.
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (*Profile, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if code == "" {
		return nil, ErrInvalidCode
	}

	var out struct {
		AccessToken string  `json:"access_token"`
		User        Profile `json:"user"`
	}
	if err := c.post(ctx, "/auth/verify-otp", map[string]string{"email": email, "otp": code}, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	if out.AccessToken == "" {
		return nil, ErrVerifyFailed
	}

	if out.User.Email == "" {
		out.User.Email = email
	}
	c.persistSession(out.AccessToken, out.User)
	if c.onLogin != nil {
		c.onLogin()
	}
	return &out.User, nil
}

// Logout clears the stored credential and profile.
func (c *Client) Logout() {
	for _, key := range []string{session.AccessTokenKey, session.UserEmailKey, session.UserDataKey} {
		if err := c.kv.Delete(key); err != nil {
			logger.L().Warn("failed to clear session key", zap.String("key", key), zap.Error(err))
		}
	}
}

func (c *Client) persistSession(token string, user Profile) {
	if err := c.kv.Set(session.AccessTokenKey, token); err != nil {
		logger.L().Warn("failed to store access token", zap.Error(err))
	}
	if err := c.kv.Set(session.UserEmailKey, user.Email); err != nil {
		logger.L().Warn("failed to store user email", zap.Error(err))
	}
	if raw, err := json.Marshal(user); err == nil {
		if err := c.kv.Set(session.UserDataKey, string(raw)); err != nil {
			logger.L().Warn("failed to store user profile", zap.Error(err))
		}
	}
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	reqID := uuid.New().String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("auth service returned %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
