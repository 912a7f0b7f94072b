package services

import (
	"context"
	"errors"
	"fmt"
	"phishlms/backend/config"
	"phishlms/backend/models"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FallbackReply is returned whenever the completion API fails or times out.
// Upstream failures never reach the caller.
const FallbackReply = "I'm sorry, I'm having trouble connecting to the knowledge base. Please try again later."

type ChatbotService struct {
	DB      *gorm.DB
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewChatbotService(db *gorm.DB, cfg *config.Config) *ChatbotService {
	clientCfg := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &ChatbotService{
		DB:      db,
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.OpenAIModel,
		timeout: cfg.OpenAITimeout,
	}
}

// Reply asks the completion API to answer message with the user's tier and
// completed courses injected as context. The call is bounded by the
// configured timeout and degrades to FallbackReply on any failure.
func (s *ChatbotService) Reply(ctx context.Context, user *models.User, completedTitles []string, message string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: buildSystemPrompt(user.Classification, completedTitles),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildUserMessage(user, completedTitles, message),
			},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil || len(resp.Choices) == 0 {
		return FallbackReply
	}

	return resp.Choices[0].Message.Content
}

// SaveExchange appends the user message and the bot reply to the user's chat
// session, creating the session on first use. The session insert ignores the
// unique user_id conflict, so two concurrent first messages both land under
// the one session; messages are independent rows, so concurrent appends
// cannot overwrite each other.
func (s *ChatbotService) SaveExchange(userID uint, userMessage, botReply string) error {
	session := models.ChatSession{UserID: userID}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&session).Error; err != nil {
		return err
	}
	if session.ID == 0 {
		// Insert hit the conflict; another request created the session.
		if err := s.DB.Where("user_id = ?", userID).First(&session).Error; err != nil {
			return err
		}
	}

	messages := []models.ChatMessage{
		{ChatSessionID: session.ID, Sender: "user", Body: userMessage},
		{ChatSessionID: session.ID, Sender: "bot", Body: botReply},
	}
	return s.DB.Create(&messages).Error
}

// History returns the user's chat messages in append order. A user with no
// session has an empty history.
func (s *ChatbotService) History(userID uint) ([]models.ChatMessage, error) {
	var session models.ChatSession
	if err := s.DB.Where("user_id = ?", userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.ChatMessage{}, nil
		}
		return nil, err
	}

	var messages []models.ChatMessage
	if err := s.DB.Where("chat_session_id = ?", session.ID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func buildSystemPrompt(classification string, completedTitles []string) string {
	return fmt.Sprintf(
		"You are a helpful phishing awareness assistant for a corporate Learning Management System. "+
			"Provide tailored advice based on the user's knowledge level: %s. "+
			"Be supportive and educational. Focus on phishing awareness, prevention, and best practices. "+
			"The user has completed these courses: %s. "+
			"Always respond in a professional but friendly tone.",
		classification, joinOrNone(completedTitles))
}

func buildUserMessage(user *models.User, completedTitles []string, message string) string {
	var b strings.Builder
	b.WriteString("User Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", user.Name)
	fmt.Fprintf(&b, "- Email: %s\n", user.Email)
	fmt.Fprintf(&b, "- Classification: %s\n", user.Classification)
	fmt.Fprintf(&b, "- Completed Courses: %s\n", joinOrNone(completedTitles))
	fmt.Fprintf(&b, "\nUser question: %s", message)
	return b.String()
}

func joinOrNone(titles []string) string {
	if len(titles) == 0 {
		return "none"
	}
	return strings.Join(titles, ", ")
}
