package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"phishlms/backend/config"
	"phishlms/backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func chatbotAgainst(baseURL string) *ChatbotService {
	return NewChatbotService(nil, &config.Config{
		OpenAIKey:     "test-key",
		OpenAIModel:   "gpt-3.5-turbo",
		OpenAIBaseURL: baseURL,
		OpenAITimeout: 2 * time.Second,
	})
}

func TestReplyFallsBackOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := chatbotAgainst(server.URL + "/v1")
	user := &models.User{Name: "Test", Email: "t@example.com", Classification: TierBeginner}

	reply := svc.Reply(context.Background(), user, nil, "What is phishing?")
	assert.Equal(t, FallbackReply, reply)
}

func TestReplyFallsBackOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	svc := chatbotAgainst(server.URL + "/v1")
	user := &models.User{Name: "Test", Email: "t@example.com", Classification: TierBeginner}

	reply := svc.Reply(context.Background(), user, nil, "What is phishing?")
	assert.Equal(t, FallbackReply, reply)
}

func TestReplyFallsBackOnUnreachableEndpoint(t *testing.T) {
	// Nothing listens on port 1; the connection is refused immediately.
	svc := chatbotAgainst("http://127.0.0.1:1/v1")
	user := &models.User{Name: "Test", Email: "t@example.com", Classification: TierBeginner}

	reply := svc.Reply(context.Background(), user, nil, "What is phishing?")
	assert.Equal(t, FallbackReply, reply)
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := buildSystemPrompt(TierIntermediate, []string{"Phishing Awareness Basics"})

	assert.Contains(t, prompt, "knowledge level: intermediate")
	assert.Contains(t, prompt, "Phishing Awareness Basics")
	assert.Contains(t, prompt, "phishing awareness")
}

func TestBuildSystemPromptNoCourses(t *testing.T) {
	prompt := buildSystemPrompt(TierBeginner, nil)

	assert.Contains(t, prompt, "knowledge level: beginner")
	assert.Contains(t, prompt, "completed these courses: none")
}

func TestBuildUserMessage(t *testing.T) {
	user := &models.User{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Classification: TierAdvanced,
	}

	msg := buildUserMessage(user, []string{"Basics", "Spear Phishing"}, "How do I spot a fake invoice?")

	assert.Contains(t, msg, "- Name: Jane Doe")
	assert.Contains(t, msg, "- Email: jane@example.com")
	assert.Contains(t, msg, "- Classification: advanced")
	assert.Contains(t, msg, "Basics, Spear Phishing")
	assert.Contains(t, msg, "User question: How do I spot a fake invoice?")
}

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "none", joinOrNone(nil))
	assert.Equal(t, "none", joinOrNone([]string{}))
	assert.Equal(t, "a, b", joinOrNone([]string{"a", "b"}))
}
