// ABOUTME: Vision client that estimates meal nutrition from a photo.
// ABOUTME: Talks to an OpenAI-compatible chat completions endpoint.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

const analysisPrompt = `Analyze this meal photo and respond ONLY with JSON in this exact format:
{
  "foods": ["food 1", "food 2"],
  "estimated_calories": number,
  "protein_g": number,
  "carbs_g": number,
  "fat_g": number,
  "estimated_portion": "description of the portion size",
  "notes": "one short nutrition tip about this meal"
}
If the image does not show food, respond with {"error": "no food identified in the image"}.`

// Estimate is the nutrition breakdown inferred from a meal photo.
type Estimate struct {
	Foods             []string `json:"foods"`
	EstimatedCalories float64  `json:"estimated_calories"`
	ProteinG          float64  `json:"protein_g"`
	CarbsG            float64  `json:"carbs_g"`
	FatG              float64  `json:"fat_g"`
	EstimatedPortion  string   `json:"estimated_portion"`
	Notes             string   `json:"notes"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// AnalyzeFile reads an image from disk and analyzes it.
func (c *Client) AnalyzeFile(ctx context.Context, path string) (*Estimate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return c.Analyze(ctx, raw, mimeTypeForPath(path))
}

// Analyze sends the image to the vision model and parses the nutrition
// estimate out of its reply. A reply reporting no food, or one without
// a JSON object, is an error; callers never see a partial estimate.
func (c *Client) Analyze(ctx context.Context, image []byte, mimeType string) (*Estimate, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing vision API key (set OPENAI_API_KEY or openai_api_key in config)")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = "gpt-4o"
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	reqBody := chatRequest{
		Model:     model,
		MaxTokens: 500,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []chatContent{
					{Type: "text", Text: analysisPrompt},
					{Type: "image_url", ImageURL: &chatImageURL{URL: dataURL}},
				},
			},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal vision payload: %w", err)
	}

	url := baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute vision request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read vision response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vision request failed with status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode vision response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("vision response contained no choices")
	}

	return parseEstimate(parsed.Choices[0].Message.Content)
}

// jsonObjectRe grabs the outermost brace-delimited block; the model
// sometimes wraps its JSON in prose or a code fence.
var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

func parseEstimate(content string) (*Estimate, error) {
	block := jsonObjectRe.FindString(content)
	if block == "" {
		return nil, fmt.Errorf("no JSON object in vision reply")
	}

	var refusal struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(block), &refusal); err == nil && refusal.Error != "" {
		return nil, fmt.Errorf("vision model: %s", refusal.Error)
	}

	var est Estimate
	if err := json.Unmarshal([]byte(block), &est); err != nil {
		return nil, fmt.Errorf("decode nutrition estimate: %w", err)
	}
	if len(est.Foods) == 0 {
		return nil, fmt.Errorf("vision reply identified no foods")
	}
	return &est, nil
}

func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []chatContent `json:"content"`
}

type chatContent struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
