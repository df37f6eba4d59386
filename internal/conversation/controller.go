package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"feebank/internal/models"
	"feebank/internal/service/resolver"
)

// Greeting is shown when a conversation opens. It is not part of the log.
const Greeting = "Hello! I'm PCTE's virtual assistant. How can I help you today? You can ask me about courses, admissions, facilities, placements, or any other information about PCTE."

var (
	ErrEmptyMessage = errors.New("message text is required")
	ErrReplyPending = errors.New("a reply is still pending")
)

// Resolver produces the assistant reply for one user query.
type Resolver interface {
	ResolveDetailed(ctx context.Context, query string) resolver.Resolution
}

// Exchange is the result of one completed submit.
type Exchange struct {
	UserMessage models.ChatMessage  `json:"user_message"`
	Reply       models.ChatMessage  `json:"reply"`
	Resolution  resolver.Resolution `json:"-"`
}

// Controller owns one append-only conversation log. At most one reply is
// outstanding at a time; a second submit while pending is rejected.
type Controller struct {
	id       string
	resolver Resolver
	now      func() time.Time

	mu         sync.Mutex
	log        []models.ChatMessage
	pending    bool
	createdAt  time.Time
	lastActive time.Time
}

func NewController(id string, r Resolver) *Controller {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	return &Controller{
		id:         id,
		resolver:   r,
		now:        func() time.Time { return time.Now().UTC() },
		createdAt:  now,
		lastActive: now,
	}
}

func (c *Controller) ID() string { return c.id }

// Submit appends the user message, resolves a reply and appends it.
func (c *Controller) Submit(ctx context.Context, text string) (*Exchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return nil, ErrReplyPending
	}
	userMsg := c.newMessage(text, models.SenderUser, "")
	c.log = append(c.log, userMsg)
	c.pending = true
	c.lastActive = userMsg.Timestamp
	c.mu.Unlock()

	res := c.resolver.ResolveDetailed(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	reply := c.newMessage(res.Text, models.SenderAssistant, res.Source)
	if reply.Timestamp.Before(userMsg.Timestamp) {
		reply.Timestamp = userMsg.Timestamp
	}
	c.log = append(c.log, reply)
	c.pending = false
	c.lastActive = reply.Timestamp
	return &Exchange{UserMessage: userMsg, Reply: reply, Resolution: res}, nil
}

// Messages returns a copy of the log in display order.
func (c *Controller) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.log))
	copy(out, c.log)
	return out
}

// Pending reports whether a reply is being resolved.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Controller) LastActive() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastActive
}

func (c *Controller) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Controller) idleSince(cutoff time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.pending && !c.lastActive.After(cutoff)
}

func (c *Controller) newMessage(text string, sender models.Sender, source models.ReplySource) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Source:    source,
		Timestamp: c.now(),
	}
}
