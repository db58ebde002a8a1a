package oauth

import (
	"context"

	"linebook-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenEndpoint issues short-lived channel access tokens via the
// client-credentials grant.
const TokenEndpoint = "https://api.line.me/v2/oauth/accessToken"

// LineOAuth handles channel access token acquisition for the Messaging API
type LineOAuth struct {
	staticToken string
	config      *clientcredentials.Config
	logger      logger.Logger
}

// NewLineOAuth creates a new LINE OAuth handler. When staticToken is set
// (a long-lived channel access token from the developer console) it is used
// as-is; otherwise tokens are minted with the channel ID and secret.
func NewLineOAuth(staticToken, channelID, channelSecret string, logger logger.Logger) *LineOAuth {
	return &LineOAuth{
		staticToken: staticToken,
		config: &clientcredentials.Config{
			ClientID:     channelID,
			ClientSecret: channelSecret,
			TokenURL:     TokenEndpoint,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		logger: logger,
	}
}

// GetTokenSource returns a token source for the Messaging API client
func (o *LineOAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	if o.staticToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.staticToken})
	}

	o.logger.Info("Using client-credentials channel token flow", "channelId", o.config.ClientID)
	return o.config.TokenSource(ctx)
}
