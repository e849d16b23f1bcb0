package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	baseURL    = "https://generativelanguage.googleapis.com"
	apiPath    = "/v1beta/models/%s:generateContent"
	defaultTTL = 15 * time.Second
)

// Client defines the generative-text operation the advisory layer consumes.
// The returned text is free-form and must never be parsed beyond display.
type Client interface {
	GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

// GenerationOptions tune a single generation call.
type GenerationOptions struct {
	Temperature     float64
	MaxOutputTokens int
}

type geminiClient struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

// NewClient creates a configured Gemini client.
func NewClient(apiKey, model string) Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("content-type", "application/json").
		SetTimeout(defaultTTL)

	return &geminiClient{httpClient: client, apiKey: apiKey, model: model}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Config: genConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	}

	var respBody generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(fmt.Sprintf(apiPath, c.model))

	if err != nil {
		return "", fmt.Errorf("gemini api call: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return "", fmt.Errorf("gemini api error: status=%d, body=%s", resp.StatusCode(), resp.String())
	}
	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	return respBody.Candidates[0].Content.Parts[0].Text, nil
}
