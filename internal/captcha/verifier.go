package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrVerificationFailed covers every non-success: provider unreachable,
// rejected token, low score, wrong action. Callers get no finer detail.
var ErrVerificationFailed = errors.New("captcha_verification_failed")

const expectedAction = "start_game"

// Verifier asks the bot-verification provider whether a game start is human.
// An empty secret disables verification (local development).
type Verifier struct {
	HTTPClient *http.Client
	VerifyURL  string
	Secret     string
	MinScore   float64
}

func NewVerifier(verifyURL, secret string, minScore float64) *Verifier {
	return &Verifier{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		VerifyURL:  verifyURL,
		Secret:     secret,
		MinScore:   minScore,
	}
}

func (v *Verifier) Enabled() bool {
	return v.Secret != ""
}

type verifyResponse struct {
	Success bool     `json:"success"`
	Score   *float64 `json:"score"`
	Action  string   `json:"action"`
}

// Verify blocks game creation unless the provider confirms the token with a
// sufficient score for the start-game action.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) error {
	if !v.Enabled() {
		return nil
	}
	if token == "" {
		return ErrVerificationFailed
	}

	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return ErrVerificationFailed
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("captcha provider unreachable")
		return ErrVerificationFailed
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("captcha provider error")
		return ErrVerificationFailed
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ErrVerificationFailed
	}
	if !out.Success {
		return ErrVerificationFailed
	}
	if out.Score == nil || *out.Score < v.MinScore {
		return ErrVerificationFailed
	}
	if out.Action != "" && out.Action != expectedAction {
		return ErrVerificationFailed
	}
	return nil
}
