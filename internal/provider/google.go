// Package provider adapts the Google OAuth identity provider.
package provider

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrNoProfile = errors.New("no user profile found")

// Profile is the subset of the Google userinfo response the bootstrap flow
// consumes.
type Profile struct {
	ID            string
	Email         string
	DisplayName   string
	Avatar        string
	EmailVerified bool
}

// GoogleOAuthProvider drives the browser consent flow and resolves an
// authorization code to a user profile.
type GoogleOAuthProvider struct {
	config *oauth2.Config
}

func NewGoogleOAuthProvider(clientID, clientSecret, redirectURL string) *GoogleOAuthProvider {
	return &GoogleOAuthProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL returns the Google consent page URL for the given state.
func (p *GoogleOAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchProfile exchanges the authorization code and fetches the userinfo
// document for the granted token.
func (p *GoogleOAuthProvider) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	service, err := oauth2api.NewService(ctx, option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}

	if userInfo == nil || userInfo.Id == "" {
		return nil, ErrNoProfile
	}

	verified := userInfo.VerifiedEmail != nil && *userInfo.VerifiedEmail

	return &Profile{
		ID:            userInfo.Id,
		Email:         userInfo.Email,
		DisplayName:   userInfo.Name,
		Avatar:        userInfo.Picture,
		EmailVerified: verified,
	}, nil
}
