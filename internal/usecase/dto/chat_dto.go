package dto

import "github.com/property-admin/internal/domain"

type ChatSendRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

type ChatTranscriptResponse struct {
	ConversationID string               `json:"conversation_id"`
	Messages       []domain.ChatMessage `json:"messages"`
}
