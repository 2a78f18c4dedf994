package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/example/physquest/pkg/models"
)

// Client talks to the OpenAI chat-completions API. It is only constructed
// when an API key is configured; handlers that hold a nil *Client use the
// static fallback content instead. There are no retries and no automatic
// fallback here: a failed call is reported to the caller as-is.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// New creates a new OpenAI client
func New(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     "https://api.openai.com/v1/chat/completions",
		httpClient: &http.Client{},
	}
}

// Message represents a message in the chat conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the chat-completions API
type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// ChatResponse represents a response from the chat-completions API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Explain asks the model for a long-form explanation of a physics topic
func (c *Client) Explain(topic string) (string, error) {
	prompt := fmt.Sprintf(
		"Explain %s in physics in 4-5 detailed paragraphs for high school students. Include key concepts, formulas, real-world examples, and common misconceptions. Make it engaging and easy to understand.",
		topic,
	)

	messages := []Message{
		{Role: "user", Content: prompt},
	}

	return c.complete(messages, 500)
}

// GenerateFlashcards asks the model for three flashcards about a topic.
// The model is expected to return a JSON array; the response is parsed
// directly with no schema validation, and a malformed reply fails the
// whole call.
func (c *Client) GenerateFlashcards(topic string) ([]models.Flashcard, error) {
	prompt := fmt.Sprintf(
		"Generate 3 flashcard questions and answers about %s in physics. Format as JSON array with \"question\" and \"answer\" fields.",
		topic,
	)

	messages := []Message{
		{Role: "user", Content: prompt},
	}

	content, err := c.complete(messages, 300)
	if err != nil {
		return nil, err
	}

	var flashcards []models.Flashcard
	if err := json.Unmarshal([]byte(content), &flashcards); err != nil {
		return nil, fmt.Errorf("failed to parse flashcards response: %v", err)
	}

	return flashcards, nil
}

// AnswerQuestion asks the model to answer a student question about a topic
func (c *Client) AnswerQuestion(topic, question string) (string, error) {
	messages := []Message{
		{Role: "system", Content: fmt.Sprintf(
			"You are a helpful physics tutor. Answer questions about %s in simple, clear language for high school students. Use examples.",
			topic,
		)},
		{Role: "user", Content: question},
	}

	return c.complete(messages, 300)
}

// complete sends one chat-completions request and returns the reply text
func (c *Client) complete(messages []Message, maxTokens int) (string, error) {
	request := ChatRequest{
		Model:     "gpt-3.5-turbo",
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
