package chat

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// Options configure a Client.
type Options struct {
	// BaseURL is the API root, without the trailing path segment.
	BaseURL string

	// APIKey is sent as a bearer token. An empty key still sends the
	// request; the endpoint rejects it and the caller sees the error.
	APIKey string

	// Model names the completion model.
	Model string

	// HTTPClient overrides the transport. Defaults to
	// http.DefaultClient. No timeout is set here; callers bound
	// requests with their context.
	HTTPClient *http.Client
}

// Client is a thin chat-completions API client.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient builds a client from options.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		model:      opts.Model,
		httpClient: httpClient,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Stream      bool      `json:"stream,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) post(ctx context.Context, reqBody completionRequest) (*http.Response, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("completion request failed: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	return resp, nil
}

// Stream sends messages with streaming enabled and calls onDelta for
// each text fragment as it arrives. It returns the accumulated reply.
// The event format is server-sent-event lines: a data prefix carries
// a JSON chunk, and a sentinel marks end-of-stream.
func (c *Client) Stream(ctx context.Context, messages []Message, onDelta func(string)) (string, error) {
	resp, err := c.post(ctx, completionRequest{
		Model:    c.model,
		Stream:   true,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var full strings.Builder
	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read stream: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			done, handleErr := c.handleStreamLine(trimmed, &full, onDelta)
			if handleErr != nil {
				return "", handleErr
			}
			if done {
				return full.String(), nil
			}
		}

		if errors.Is(err, io.EOF) {
			return full.String(), nil
		}
	}
}

func (c *Client) handleStreamLine(line string, full *strings.Builder, onDelta func(string)) (done bool, err error) {
	if !strings.HasPrefix(line, dataPrefix) {
		return false, nil
	}
	payload := strings.TrimPrefix(line, dataPrefix)
	if payload == doneSentinel {
		return true, nil
	}

	var chunk completionChunk
	if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
		return false, fmt.Errorf("decode stream chunk: %w", err)
	}
	if len(chunk.Choices) == 0 {
		return false, nil
	}

	if text := chunk.Choices[0].Delta.Content; text != "" {
		full.WriteString(text)
		if onDelta != nil {
			onDelta(text)
		}
	}
	return false, nil
}

// Complete sends a non-streaming request and returns the reply text.
func (c *Client) Complete(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	resp, err := c.post(ctx, completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var decoded completionChunk
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response had no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}
