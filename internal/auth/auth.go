package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/finwellhq/insights-go/internal/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const loginEndpoint = "/v1/auth/login"

// Service handles authentication operations against the snapshot API
type Service struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	session    *types.Session
	logger     types.Logger
}

// NewService creates a new auth service
func NewService(baseURL string, httpClient *http.Client, logger types.Logger) *Service {
	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
		"User-Agent":   types.UserAgent,
		"device-uuid":  uuid.New().String(),
	}

	return &Service{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
		logger:     logger,
	}
}

// Login performs authentication
func (s *Service) Login(ctx context.Context, email, password string) error {
	return s.login(ctx, email, password)
}

// GetSession returns the current session
func (s *Service) GetSession() (*types.Session, error) {
	if s.session == nil {
		return nil, types.ErrNotAuthenticated
	}
	return s.session, nil
}

// SaveSession saves session to file
func (s *Service) SaveSession(path string) error {
	if s.session == nil {
		return types.ErrNotAuthenticated
	}

	// Create directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrap(err, "failed to create session directory")
	}

	data, err := json.MarshalIndent(s.session, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	// Write to file with restrictive permissions
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}

	if s.logger != nil {
		s.logger.Info("Session saved", "path", path)
	}

	return nil
}

// LoadSession loads session from file
func (s *Service) LoadSession(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ErrNotAuthenticated
		}
		return errors.Wrap(err, "failed to read session file")
	}

	var session types.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return errors.Wrap(err, "failed to unmarshal session")
	}

	// Check expiry
	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		return types.ErrSessionExpired
	}

	s.session = &session

	if s.logger != nil {
		s.logger.Info("Session loaded", "path", path, "email", session.Email)
	}

	return nil
}

// SetSession sets the current session
func (s *Service) SetSession(session *types.Session) {
	s.session = session
}

// login performs the login request
func (s *Service) login(ctx context.Context, email, password string) error {
	reqBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to marshal login request")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+loginEndpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create login request")
	}

	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	if s.logger != nil {
		s.logger.Debug("Login request", "email", email)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read login response")
	}

	if s.logger != nil {
		s.logger.Debug("Login response", "status", resp.StatusCode)
	}

	var loginResp loginResponse
	if err := json.Unmarshal(respBody, &loginResp); err != nil {
		return errors.Wrap(err, "failed to parse login response")
	}

	if loginResp.ErrorCode != "" {
		switch loginResp.ErrorCode {
		case "INVALID_CREDENTIALS":
			return types.ErrLoginFailed
		default:
			return &types.Error{
				Code:    loginResp.ErrorCode,
				Message: loginResp.Message,
			}
		}
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return types.ErrLoginFailed
		}
		return &types.Error{
			Code:       "LOGIN_FAILED",
			Message:    fmt.Sprintf("login failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	if loginResp.Token == "" {
		return errors.New("no token in login response")
	}

	s.session = &types.Session{
		Token:      loginResp.Token,
		UserID:     loginResp.UserID,
		Email:      email,
		ExpiresAt:  time.Now().Add(24 * time.Hour), // Default 24h expiry
		DeviceUUID: s.headers["device-uuid"],
	}

	if s.logger != nil {
		s.logger.Info("Login successful", "email", email)
	}

	return nil
}

// loginResponse is the shape of the login endpoint response
type loginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}
