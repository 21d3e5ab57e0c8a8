package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// Firebase signs the operator in with a phone OTP against the Identity
// Toolkit REST API. The flow is two-step: StartPhoneSignIn requests a
// verification code and keeps the returned challenge, then
// ConfirmPhoneSignIn exchanges challenge + code for an ID token.
type Firebase struct {
	apiKey  string
	baseURL string
	hc      *http.Client

	mu          sync.Mutex
	sessionInfo string
	token       string
	label       string
}

func NewFirebase(apiKey string) (*Firebase, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("firebase web api key is required")
	}
	return &Firebase{
		apiKey:  apiKey,
		baseURL: identityToolkitURL,
		hc:      http.DefaultClient,
	}, nil
}

func (f *Firebase) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *Firebase) Label() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.label
}

func (f *Firebase) SignOut() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.label = ""
	f.sessionInfo = ""
}

func (f *Firebase) StartPhoneSignIn(ctx context.Context, phone, challenge string) error {
	if strings.TrimSpace(challenge) == "" {
		return errors.New("challenge token is required")
	}
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return err
	}

	var resp struct {
		SessionInfo string `json:"sessionInfo"`
	}
	err = f.call(ctx, "accounts:sendVerificationCode", map[string]string{
		"phoneNumber":    normalized,
		"recaptchaToken": challenge,
	}, &resp)
	if err != nil {
		return err
	}
	if resp.SessionInfo == "" {
		return errors.New("provider returned no verification session")
	}

	f.mu.Lock()
	f.sessionInfo = resp.SessionInfo
	f.mu.Unlock()
	return nil
}

func (f *Firebase) ConfirmPhoneSignIn(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if len(code) != 6 || !digitsOnly(code) {
		return errors.New("enter 6-digit OTP")
	}

	f.mu.Lock()
	sessionInfo := f.sessionInfo
	f.mu.Unlock()
	if sessionInfo == "" {
		return errors.New("send OTP first")
	}

	var resp struct {
		IDToken     string `json:"idToken"`
		PhoneNumber string `json:"phoneNumber"`
	}
	err := f.call(ctx, "accounts:signInWithPhoneNumber", map[string]string{
		"sessionInfo": sessionInfo,
		"code":        code,
	}, &resp)
	if err != nil {
		return err
	}
	if resp.IDToken == "" {
		return errors.New("provider returned no token")
	}

	f.mu.Lock()
	f.token = resp.IDToken
	f.label = resp.PhoneNumber
	f.sessionInfo = ""
	f.mu.Unlock()
	return nil
}

func (f *Firebase) call(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", f.baseURL, method, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := f.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.New(providerError(raw, res.Status))
	}
	return json.Unmarshal(raw, out)
}

func providerError(body []byte, fallback string) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return fallback
}

// NormalizePhone widens a locally formatted Indian number to E.164.
// Numbers already carrying a + pass through as-is.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	normalized := raw
	if !strings.HasPrefix(raw, "+") {
		digits := keepDigits(raw)
		if strings.HasPrefix(digits, "91") && len(digits) == 12 {
			normalized = "+" + digits
		} else {
			normalized = "+91" + digits
		}
	}
	if len(keepDigits(normalized)) < 12 {
		return "", errors.New("Enter a valid phone number.")
	}
	return normalized, nil
}

func keepDigits(value string) string {
	var b strings.Builder
	for _, ch := range value {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
