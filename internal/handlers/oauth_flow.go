package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"fizzquiz/internal/config"
	"fizzquiz/internal/service"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthHandler serves the Google sign-in flow. Disabled when no client ID is
// configured.
type OAuthHandler struct {
	users           *service.UserService
	config          *oauth2.Config
	redirectBaseURL string
	clientOrigin    string
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(users *service.UserService, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{
		users: users,
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		redirectBaseURL: cfg.OAuthRedirectBaseURL,
		clientOrigin:    cfg.ClientOrigin,
	}
}

// Enabled reports whether Google sign-in is configured
func (h *OAuthHandler) Enabled() bool {
	return h.config.ClientID != "" && h.config.ClientSecret != ""
}

// Start initiates the Google OAuth flow
func (h *OAuthHandler) Start(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled() {
		writeBadRequest(w, "OAuth provider not configured")
		return
	}

	state, err := randomState()
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((10 * time.Minute).Seconds()),
	})

	cfg := *h.config
	cfg.RedirectURL = h.redirectURL()

	http.Redirect(w, r, cfg.AuthCodeURL(state, oauth2.AccessTypeOnline), http.StatusFound)
}

// Callback finishes the Google OAuth flow, provisions the account if needed
// and hands the bearer token back to the frontend via redirect fragment
func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled() {
		writeBadRequest(w, "OAuth provider not configured")
		return
	}

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if code == "" {
		writeBadRequest(w, "missing authorization code")
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		writeBadRequest(w, "invalid OAuth state")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cfg := *h.config
	cfg.RedirectURL = h.redirectURL()

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		writeBadRequest(w, "failed to exchange OAuth code")
		return
	}

	info, err := fetchGoogleUser(ctx, token)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	_, apiToken, _, err := h.users.LoginOAuth("google", info.ID, info.Email, info.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	redirect := fmt.Sprintf("%s/login#token=%s",
		strings.TrimRight(h.clientOrigin, "/"), url.QueryEscape(apiToken))
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchGoogleUser(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return googleUserInfo{}, fmt.Errorf("failed to fetch Google user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("failed to fetch Google user info")
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, fmt.Errorf("failed to parse Google user info")
	}
	return info, nil
}

func (h *OAuthHandler) redirectURL() string {
	return fmt.Sprintf("%s/auth/google/callback", strings.TrimRight(h.redirectBaseURL, "/"))
}

func randomState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
