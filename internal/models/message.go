package models

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ReplySource records which path produced an assistant reply.
type ReplySource string

const (
	SourceGenerative ReplySource = "generative"
	SourceFallback   ReplySource = "fallback"
	SourceRedirect   ReplySource = "redirect"
)

// ChatMessage is one entry of a conversation log. It is never modified after creation.
type ChatMessage struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    Sender      `json:"sender"`
	Source    ReplySource `json:"source,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
