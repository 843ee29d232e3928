package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// WhisperClient implements Transcriber against a whisper.cpp server
// (or any compatible /inference endpoint).
type WhisperClient struct {
	baseURL  string
	language string
	client   *http.Client
}

// Config holds whisper client configuration
type Config struct {
	BaseURL    string
	Language   string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// NewWhisperClient creates a new whisper-server client
func NewWhisperClient(cfg Config) (*WhisperClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &WhisperClient{
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		client:   cfg.HTTPClient,
	}, nil
}

// Transcribe posts the audio as multipart form data and returns the
// recognized text.
func (c *WhisperClient) Transcribe(ctx context.Context, audio []byte, lang string) (*Transcript, error) {
	if len(audio) == 0 {
		return nil, fmt.Errorf("audio is empty")
	}
	if lang == "" {
		lang = c.language
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("failed to write audio: %w", err)
	}
	if err := writer.WriteField("language", lang); err != nil {
		return nil, fmt.Errorf("failed to write language field: %w", err)
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return nil, fmt.Errorf("failed to write format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/inference", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcription failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Text     string `json:"text"`
		Language string `json:"language"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("transcription failed: %s", result.Error)
	}

	if result.Language == "" {
		result.Language = lang
	}
	return &Transcript{Text: result.Text, Language: result.Language}, nil
}

// Name returns the engine name
func (c *WhisperClient) Name() string {
	return "whisper"
}
