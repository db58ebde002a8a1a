package repository

import "context"

// ReplyRepository defines the interface for sending replies back to the
// messaging platform. A reply token routes exactly one outbound reply.
type ReplyRepository interface {
	ReplyText(ctx context.Context, replyToken, text string) error
}
