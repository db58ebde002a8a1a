package repository

import (
	"context"
	"fmt"
	"sync"

	"linebook-service/internal/domain/repository"
	"linebook-service/pkg/logger"
	"linebook-service/pkg/metrics"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"golang.org/x/oauth2"
)

// LineReplyRepository sends replies through the LINE Messaging API. The
// channel access token comes from a token source so short-lived tokens
// rotate without restarting the service.
type LineReplyRepository struct {
	tokenSource oauth2.TokenSource
	metrics     *metrics.Metrics
	logger      logger.Logger

	mu     sync.Mutex
	client *messaging_api.MessagingApiAPI
	token  string
}

// NewLineReplyRepository creates a new LINE reply repository
func NewLineReplyRepository(tokenSource oauth2.TokenSource, metrics *metrics.Metrics, logger logger.Logger) repository.ReplyRepository {
	return &LineReplyRepository{
		tokenSource: tokenSource,
		metrics:     metrics,
		logger:      logger,
	}
}

// botClient returns the Messaging API client, rebuilding it when the
// channel access token has rotated.
func (r *LineReplyRepository) botClient() (*messaging_api.MessagingApiAPI, error) {
	token, err := r.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain channel access token: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client == nil || r.token != token.AccessToken {
		client, err := messaging_api.NewMessagingApiAPI(token.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create messaging client: %w", err)
		}
		r.client = client
		r.token = token.AccessToken
	}

	return r.client, nil
}

// ReplyText sends a single text reply keyed by the event's reply token
func (r *LineReplyRepository) ReplyText(ctx context.Context, replyToken, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bot, err := r.botClient()
	if err != nil {
		return err
	}

	_, err = bot.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{
				Text: text,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	r.metrics.RepliesSent.Inc()
	r.logger.Debug("Reply sent", "replyToken", replyToken)
	return nil
}
