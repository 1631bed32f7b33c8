package gemini

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/upb/career-advisor/services/providers"
)

const (
	providerName   = "gemini"
	defaultTimeout = 60 * time.Second

	// generateAction is the supported action a model must list to serve generateContent
	generateAction = "generateContent"

	jsonMIMEType = "application/json"
)

// Config holds the Gemini adapter settings
type Config struct {
	// BaseURL overrides the Gemini endpoint (tests and proxies)
	BaseURL string

	// Timeout bounds a single generateContent request
	Timeout time.Duration

	// HTTPClient is used for all requests when set
	HTTPClient *http.Client
}

// Adapter implements providers.Client on top of the Gemini API
type Adapter struct {
	config     Config
	httpClient *http.Client
}

// ModelInfo describes a model offered by the Gemini API
type ModelInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// NewAdapter creates a new Gemini adapter
func NewAdapter(config Config) *Adapter {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Adapter{
		config:     config,
		httpClient: httpClient,
	}
}

// Name returns the provider name
func (a *Adapter) Name() string {
	return providerName
}

// Call performs one generateContent request and classifies the result.
// The SDK client is built per credential and per call so nothing is shared between requests.
func (a *Adapter) Call(ctx context.Context, call providers.Call) providers.Outcome {
	if err := call.Validate(); err != nil {
		return providers.OtherFailure(providers.NewProviderError(a.Name(), "INVALID_ARGUMENT", "invalid call", 0, err))
	}

	client, err := a.newClient(ctx, call.Credential)
	if err != nil {
		return providers.OtherFailure(providers.NewProviderError(a.Name(), "CLIENT_ERROR", "failed to create client", 0, err))
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(call.Temperature)),
	}
	if call.JSON {
		genConfig.ResponseMIMEType = jsonMIMEType
	}

	resp, err := client.Models.GenerateContent(ctx, call.Model, genai.Text(call.Prompt), genConfig)
	if err != nil {
		return providers.Classify("", a.wrapError(err))
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return providers.OtherFailure(providers.NewProviderError(a.Name(), "EMPTY_RESPONSE", "response carried no text", 0, nil))
	}

	return providers.Success(text)
}

// ListModels returns the models that support generateContent for the given credential
func (a *Adapter) ListModels(ctx context.Context, credential string) ([]ModelInfo, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, providers.ErrEmptyCredential
	}

	client, err := a.newClient(ctx, credential)
	if err != nil {
		return nil, providers.NewProviderError(a.Name(), "CLIENT_ERROR", "failed to create client", 0, err)
	}

	var models []ModelInfo
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, a.wrapError(err)
		}
		if !slices.Contains(model.SupportedActions, generateAction) {
			continue
		}
		models = append(models, ModelInfo{
			ID:          strings.TrimPrefix(model.Name, "models/"),
			DisplayName: model.DisplayName,
		})
	}

	return models, nil
}

func (a *Adapter) newClient(ctx context.Context, credential string) (*genai.Client, error) {
	timeout := a.config.Timeout
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     credential,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: a.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: a.config.BaseURL,
			Timeout: &timeout,
		},
	})
}

// wrapError converts SDK errors into ProviderError so callers can inspect status codes
func (a *Adapter) wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return providers.NewProviderError(a.Name(), apiErr.Status, apiErr.Message, apiErr.Code, err)
	}
	return providers.NewProviderError(a.Name(), "TRANSPORT_ERROR", "request failed", 0, err)
}
