// Developer helper that mints a short-lived channel access token with the
// channel ID and secret. Useful when rotating away from a long-lived
// console token.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

func main() {
	channelID := os.Getenv("LINE_CHANNEL_ID")
	channelSecret := os.Getenv("LINE_CHANNEL_CLIENT_SECRET")
	if channelID == "" || channelSecret == "" {
		log.Fatal("LINE_CHANNEL_ID and LINE_CHANNEL_CLIENT_SECRET must be set")
	}

	config := &clientcredentials.Config{
		ClientID:     channelID,
		ClientSecret: channelSecret,
		TokenURL:     "https://api.line.me/v2/oauth/accessToken",
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	token, err := config.Token(context.Background())
	if err != nil {
		log.Fatalf("Failed to obtain token: %v", err)
	}

	fmt.Printf("\nChannel Access Token: %s\n", token.AccessToken)
	fmt.Printf("Expires: %s\n\n", token.Expiry)
}
