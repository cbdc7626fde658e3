package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/pkg/errors"
)

// responseRule binds a keyword set to a canned reply. Rules are evaluated in
// order and the first match wins, so list order is part of the observable
// contract: input containing both "payment" and "report" keywords resolves
// to the payment reply because it is checked first.
type responseRule struct {
	keywords []string
	response string
}

var responseRules = []responseRule{
	{
		keywords: []string{"property", "properties"},
		response: "You can manage all properties from the Properties page: add new listings, edit details, and track occupancy status.",
	},
	{
		keywords: []string{"maintenance"},
		response: "Maintenance requests are tracked on the Maintenance page. Open requests are sorted by priority, and you can assign or resolve them there.",
	},
	{
		keywords: []string{"tenant", "tenants"},
		response: "Tenant records live on the Tenants page, including lease dates, rent amounts, and emergency contacts.",
	},
	{
		keywords: []string{"payment", "rent"},
		response: "Payments are listed on the Payments page. You can see due dates, paid status, and record new payments from there.",
	},
	{
		keywords: []string{"report", "analytics"},
		response: "Reports and analytics are available from the dashboard: occupancy rates, rent collection, and maintenance trends.",
	},
	{
		keywords: []string{"hello", "hi"},
		response: "Hello! I can help with questions about properties, tenants, maintenance, and payments. What do you need?",
	},
}

const fallbackResponse = "I'm not sure about that. Try asking about properties, tenants, maintenance requests, or payments."

// Classify maps free-text input to a canned response: lower-case the input,
// walk the rule list in order, return the reply of the first rule with a
// matching keyword, or the generic fallback.
func Classify(input string) string {
	text := strings.ToLower(input)
	for _, rule := range responseRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.response
			}
		}
	}
	return fallbackResponse
}

// conversation owns an append-only transcript plus the timers of replies not
// yet delivered.
type conversation struct {
	messages []domain.ChatMessage
	pending  map[string]*time.Timer
}

// ChatUseCase is the FAQ chatbot: stateless classification over an ordered
// rule list, with a simulated typing delay before each bot reply. Every send
// schedules its own independent delayed append; sends are not deduplicated
// or queued. Closing a conversation cancels its outstanding timers so a
// stale reply can never land in a discarded transcript.
type ChatUseCase struct {
	typingDelay time.Duration
	logger      *zap.Logger

	mu            sync.Mutex
	conversations map[string]*conversation
}

// NewChatUseCase - creation of a new ChatUseCase.
func NewChatUseCase(typingDelay time.Duration, logger *zap.Logger) *ChatUseCase {
	return &ChatUseCase{
		typingDelay:   typingDelay,
		logger:        logger,
		conversations: make(map[string]*conversation),
	}
}

// SendMessage appends the user entry immediately and schedules one bot reply
// after the typing delay. Returns the user entry.
func (uc *ChatUseCase) SendMessage(conversationID, text string) domain.ChatMessage {
	userMsg := domain.ChatMessage{
		ID:     uuid.NewString(),
		Author: domain.ChatAuthorUser,
		Text:   text,
		SentAt: time.Now(),
	}
	reply := Classify(text)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	conv, ok := uc.conversations[conversationID]
	if !ok {
		conv = &conversation{pending: make(map[string]*time.Timer)}
		uc.conversations[conversationID] = conv
	}
	conv.messages = append(conv.messages, userMsg)

	timerID := uuid.NewString()
	conv.pending[timerID] = time.AfterFunc(uc.typingDelay, func() {
		uc.deliverReply(conversationID, timerID, reply)
	})

	uc.logger.Debug("Chat message accepted",
		zap.String("conversation_id", conversationID),
		zap.Duration("typing_delay", uc.typingDelay))

	return userMsg
}

// deliverReply appends the bot entry unless the conversation was closed in
// the meantime.
func (uc *ChatUseCase) deliverReply(conversationID, timerID, reply string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	conv, ok := uc.conversations[conversationID]
	if !ok {
		return
	}
	delete(conv.pending, timerID)

	conv.messages = append(conv.messages, domain.ChatMessage{
		ID:     uuid.NewString(),
		Author: domain.ChatAuthorBot,
		Text:   reply,
		SentAt: time.Now(),
	})
}

// Transcript returns a snapshot of the conversation's ordered transcript.
func (uc *ChatUseCase) Transcript(conversationID string) ([]domain.ChatMessage, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	conv, ok := uc.conversations[conversationID]
	if !ok {
		return nil, errors.ErrConversationNotFound
	}
	return append([]domain.ChatMessage(nil), conv.messages...), nil
}

// CloseConversation drops the transcript and cancels all outstanding reply
// timers for the conversation.
func (uc *ChatUseCase) CloseConversation(conversationID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	conv, ok := uc.conversations[conversationID]
	if !ok {
		return
	}
	for _, t := range conv.pending {
		t.Stop()
	}
	delete(uc.conversations, conversationID)

	uc.logger.Debug("Conversation closed",
		zap.String("conversation_id", conversationID),
		zap.Int("cancelled_replies", len(conv.pending)))
}
