// Package openai provides the chat-completion gateway over any
// OpenAI-compatible API endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dishcovery/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Config holds the completion provider settings
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	VisionModel string
	Timeout     time.Duration
}

// Client implements outbound.CompletionService against an
// OpenAI-compatible /chat/completions endpoint.
type Client struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a new completion gateway
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-3.5-turbo"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = cfg.Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.Named("completion-gateway"),
	}
}

// Chat completion wire structures
type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	ImageURL *contentImagePart `json:"image_url,omitempty"`
}

type contentImagePart struct {
	URL string `json:"url"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

const (
	recipeMaxTokens  = 1000
	calorieMaxTokens = 50
	nameMaxTokens    = 50
)

var firstNumberRe = regexp.MustCompile(`\d+(\.\d+)?`)

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.cfg.Model
}

// Complete performs a single-turn user-role completion
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return c.call(ctx, c.cfg.Model, []chatMessage{
		{Role: "user", Content: prompt},
	}, maxTokens)
}

// GenerateRecipeForDish produces a healthy recipe for a named dish
func (c *Client) GenerateRecipeForDish(ctx context.Context, dishName string, hints outbound.ProfileHints) (string, error) {
	prompt := fmt.Sprintf("Provide a healthy recipe for %s for diabetics.", dishName)
	return c.Complete(ctx, prompt+hintClauses(hints), recipeMaxTokens)
}

// GenerateRecipeFromIngredients produces a healthy recipe using the given ingredients
func (c *Client) GenerateRecipeFromIngredients(ctx context.Context, ingredients []string, hints outbound.ProfileHints) (string, error) {
	prompt := fmt.Sprintf("Provide a healthy recipe with these ingredients: %s, for diabetics",
		strings.Join(ingredients, ", "))
	return c.Complete(ctx, prompt+hintClauses(hints), recipeMaxTokens)
}

// EstimateCalories asks for a calorie estimate and parses the first
// numeric token of the reply. A reply with no number yields 0.
func (c *Client) EstimateCalories(ctx context.Context, recipeText string) (float64, error) {
	prompt := fmt.Sprintf("Estimate the calories for the following recipe:\n\n%s", recipeText)
	reply, err := c.Complete(ctx, prompt, calorieMaxTokens)
	if err != nil {
		return 0, err
	}

	match := firstNumberRe.FindString(reply)
	if match == "" {
		c.logger.Warn("Calorie reply carried no number", zap.String("reply", reply))
		return 0, nil
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, nil
	}
	return value, nil
}

// ExtractDishName asks for the dish name of a recipe text
func (c *Client) ExtractDishName(ctx context.Context, recipeText string) (string, error) {
	prompt := fmt.Sprintf("Extract the dish name from the following recipe:\n\n%s", recipeText)
	return c.Complete(ctx, prompt, nameMaxTokens)
}

// DetectIngredients identifies the ingredients visible in a food image
func (c *Client) DetectIngredients(ctx context.Context, imageURL, imageBase64 string) (string, error) {
	url := imageURL
	if url == "" {
		url = "data:image/jpeg;base64," + imageBase64
	}

	messages := []chatMessage{{
		Role: "user",
		Content: []contentPart{
			{Type: "text", Text: "List the food ingredients visible in this image as a comma-separated list. Reply with the list only."},
			{Type: "image_url", ImageURL: &contentImagePart{URL: url}},
		},
	}}

	return c.call(ctx, c.cfg.VisionModel, messages, recipeMaxTokens)
}

// call posts one chat-completion request and returns the trimmed content
// of the first choice.
func (c *Client) call(ctx context.Context, model string, messages []chatMessage, maxTokens int) (string, error) {
	reqBody := chatCompletionRequest{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	c.logger.Debug("Completion call successful",
		zap.String("model", model),
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// hintClauses renders the optional health-profile context appended to
// generation prompts.
func hintClauses(hints outbound.ProfileHints) string {
	var b strings.Builder
	if len(hints.ChronicConditions) > 0 {
		fmt.Fprintf(&b, " Take these chronic conditions into account: %s.",
			strings.Join(hints.ChronicConditions, ", "))
	}
	switch hints.HealthGoal {
	case "lose_weight":
		b.WriteString(" The person wants to lose weight.")
	case "gain_weight":
		b.WriteString(" The person wants to gain weight.")
	case "maintain":
		b.WriteString(" The person wants to maintain their weight.")
	}
	if hints.TargetWeightKg > 0 {
		fmt.Fprintf(&b, " Their target weight is %.0f kg.", hints.TargetWeightKg)
	}
	return b.String()
}
