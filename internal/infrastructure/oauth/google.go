package oauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimikegami/seller-dashboard/config"
	circuitbreaker "github.com/alimikegami/seller-dashboard/internal/infrastructure/circuit-breaker"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// ErrUnavailable is returned while the breaker guarding Google is open.
var ErrUnavailable = errors.New("identity provider unavailable")

type UserInfo struct {
	Email         string
	VerifiedEmail bool
	Name          string
	Picture       string
}

type GoogleProvider struct {
	config *oauth2.Config
	cb     *gobreaker.CircuitBreaker[UserInfo]
}

func CreateGoogleProvider(conf config.GoogleConfig) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     conf.ClientID,
			ClientSecret: conf.ClientSecret,
			RedirectURL:  conf.RedirectURL,
			Scopes: []string{
				oauth2api.OpenIDScope,
				oauth2api.UserinfoEmailScope,
				oauth2api.UserinfoProfileScope,
			},
			Endpoint: google.Endpoint,
		},
		cb: circuitbreaker.CreateCircuitBreaker[UserInfo]("google-oauth"),
	}
}

func (g *GoogleProvider) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorization code for the signed-in user's profile.
func (g *GoogleProvider) Exchange(ctx context.Context, code string) (UserInfo, error) {
	info, err := g.cb.Execute(func() (UserInfo, error) {
		token, err := g.config.Exchange(ctx, code)
		if err != nil {
			return UserInfo{}, fmt.Errorf("exchange code: %w", err)
		}

		svc, err := oauth2api.NewService(ctx, option.WithTokenSource(g.config.TokenSource(ctx, token)))
		if err != nil {
			return UserInfo{}, fmt.Errorf("create userinfo client: %w", err)
		}

		res, err := svc.Userinfo.Get().Context(ctx).Do()
		if err != nil {
			return UserInfo{}, fmt.Errorf("fetch userinfo: %w", err)
		}

		return UserInfo{
			Email:         res.Email,
			VerifiedEmail: res.VerifiedEmail != nil && *res.VerifiedEmail,
			Name:          res.Name,
			Picture:       res.Picture,
		}, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return UserInfo{}, ErrUnavailable
	}

	return info, err
}
