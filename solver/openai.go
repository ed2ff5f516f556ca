package solver

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"mathpad/core"
)

// systemPrompt pins the model to the structured-solution contract.
const systemPrompt = `You are a math tutor. You receive a math problem, either as an
image of handwriting or as plain text. Recognize the expression, solve it, and
explain the steps.

Respond with ONLY a JSON object, no prose and no markdown fence:
{"expression": "<the recognized expression>", "result": "<the computed result>", "explanation": "<step-by-step explanation>"}

If the input is not a valid, solvable math problem, set "result" to exactly "Error"
and use "explanation" to say why.`

type (
	// Config holds the connection settings for the OpenAI-compatible
	// chat-completions endpoint.
	Config struct {
		APIKey  string
		BaseURL string
		Model   string
		Timeout time.Duration
	}

	// chatMessage content is either a string or a slice of content
	// parts when an image rides along.
	chatMessage struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	}

	textContentPart struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}

	imageURL struct {
		URL string `json:"url"`
	}

	imageContentPart struct {
		Type     string   `json:"type"`
		ImageURL imageURL `json:"image_url"`
	}

	chatCompletionRequest struct {
		Model     string        `json:"model"`
		Messages  []chatMessage `json:"messages"`
		MaxTokens int           `json:"max_tokens,omitempty"`
	}

	chatCompletionResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

// ConfigFromEnv reads OPENAI_API_KEY, OPENAI_BASE_URL and SOLVER_MODEL.
// BaseURL defaults to the public OpenAI endpoint, the model to a
// vision-capable default.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:   os.Getenv("SOLVER_MODEL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.APIKey == "" {
		logrus.Warn("OPENAI_API_KEY is not set; solve requests will fail")
	}
	return cfg
}

// Client is a Solver backed by an OpenAI-compatible chat-completions
// API with vision support.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a solver client from cfg.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Solve sends the problem to the recognition service and parses the
// structured solution out of the completion. The caller is expected to
// have checked for empty input already; an empty problem here is an
// error, not a "nothing to solve" outcome.
func (c *Client) Solve(ctx context.Context, problem core.Problem) (*core.Solution, error) {
	if problem.IsEmpty() {
		return nil, fmt.Errorf("solver: empty problem")
	}

	reqBody := chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent(problem)},
		},
		MaxTokens: 2048,
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("solver: encode request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("solver: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solver: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("solver: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("solver: API error %d: %s", resp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return nil, fmt.Errorf("solver: decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("solver: empty completion")
	}

	solution, err := parseSolution(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	if len(problem.ImagePNG) > 0 {
		solution.Source = "ink"
	} else {
		solution.Source = "text"
	}
	return solution, nil
}

// userContent builds the user message: plain text for typed
// expressions, a multi-part body with a base64 PNG data URL for
// handwriting snapshots.
func userContent(problem core.Problem) any {
	if len(problem.ImagePNG) == 0 {
		return "Solve this math problem: " + problem.Expression
	}
	encoded := base64.StdEncoding.EncodeToString(problem.ImagePNG)
	return []any{
		textContentPart{Type: "text", Text: "Solve the handwritten math problem in this image."},
		imageContentPart{
			Type:     "image_url",
			ImageURL: imageURL{URL: "data:image/png;base64," + encoded},
		},
	}
}

// parseSolution extracts the structured solution from the completion
// text. Models sometimes wrap JSON in a markdown fence despite the
// prompt, so fences are stripped before decoding.
func parseSolution(content string) (*core.Solution, error) {
	text := stripFence(strings.TrimSpace(content))

	var parsed struct {
		Expression  string `json:"expression"`
		Result      string `json:"result"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("solver: malformed solution payload: %w", err)
	}
	if parsed.Result == "" {
		return nil, fmt.Errorf("solver: solution payload missing result")
	}

	return &core.Solution{
		Expression:  parsed.Expression,
		Result:      parsed.Result,
		Explanation: parsed.Explanation,
	}, nil
}

// stripFence removes a surrounding markdown code fence, if present.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
