package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quellskin/quell/internal/models"
)

// ErrDisabled is returned by every call when no gateway URL is configured.
var ErrDisabled = errors.New("ai gateway disabled")

// GatewayConfig points the gateway at the model provider proxy.
type GatewayConfig struct {
	BaseURL     string
	APIKey      string
	CoachModel  string
	VisionModel string
	Timeout     time.Duration
}

// Gateway is the HTTP implementation of all three AI collaborators. It talks
// to a single provider proxy that exposes coach, vision, and speech
// endpoints; the proxy owns prompt templates and provider selection.
type Gateway struct {
	config     GatewayConfig
	httpClient *http.Client
}

func NewGateway(config GatewayConfig) *Gateway {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Gateway{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClients wires the gateway into the collaborator bundle. All three
// interfaces share one gateway instance.
func NewClients(config GatewayConfig) *Clients {
	gateway := NewGateway(config)
	return &Clients{
		Coach:  gateway,
		Vision: gateway,
		Speech: gateway,
	}
}

func (gateway *Gateway) enabled() bool {
	return strings.TrimSpace(gateway.config.BaseURL) != ""
}

type coachRequest struct {
	Model   string                  `json:"model"`
	History []CoachMessage          `json:"history"`
	Message string                  `json:"message"`
	Profile *models.ComputedProfile `json:"profile,omitempty"`
	Logs    []models.DailyLog       `json:"logs,omitempty"`
}

type coachResponse struct {
	Reply string `json:"reply"`
}

func (gateway *Gateway) GenerateCoachResponse(ctx context.Context, history []CoachMessage, message string, profile *models.ComputedProfile, logs []models.DailyLog) (string, error) {
	if !gateway.enabled() {
		return "", ErrDisabled
	}

	var result coachResponse
	err := gateway.postJSON(ctx, "/v1/coach/message", coachRequest{
		Model:   gateway.config.CoachModel,
		History: history,
		Message: message,
		Profile: profile,
		Logs:    logs,
	}, &result)
	if err != nil {
		return "", err
	}
	return result.Reply, nil
}

type visionRequest struct {
	Model  string   `json:"model"`
	Mode   string   `json:"mode"`
	Images []string `json:"images"`
}

func (gateway *Gateway) AnalyzeSkinCondition(ctx context.Context, images []string) (SkinAnalysis, error) {
	return gateway.analyze(ctx, "scan", images)
}

func (gateway *Gateway) AnalyzeDailyInflammation(ctx context.Context, images []string) (SkinAnalysis, error) {
	return gateway.analyze(ctx, "daily", images)
}

func (gateway *Gateway) analyze(ctx context.Context, mode string, images []string) (SkinAnalysis, error) {
	if !gateway.enabled() {
		return SkinAnalysis{}, ErrDisabled
	}
	if len(images) == 0 {
		return SkinAnalysis{}, errors.New("no images to analyze")
	}

	var result SkinAnalysis
	err := gateway.postJSON(ctx, "/v1/vision/analyze", visionRequest{
		Model:  gateway.config.VisionModel,
		Mode:   mode,
		Images: images,
	}, &result)
	if err != nil {
		return SkinAnalysis{}, err
	}
	return result, nil
}

type speechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

func (gateway *Gateway) GenerateSpeech(ctx context.Context, text string, voice string) ([]byte, error) {
	if !gateway.enabled() {
		return nil, ErrDisabled
	}

	payload, err := json.Marshal(speechRequest{Text: text, Voice: voice})
	if err != nil {
		return nil, err
	}

	request, err := gateway.newRequest(ctx, "/v1/speech", payload)
	if err != nil {
		return nil, err
	}

	response, err := gateway.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		return nil, fmt.Errorf("ai gateway: %s: %s", response.Status, string(body))
	}
	return io.ReadAll(response.Body)
}

func (gateway *Gateway) postJSON(ctx context.Context, path string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	request, err := gateway.newRequest(ctx, path, body)
	if err != nil {
		return err
	}

	response, err := gateway.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
		return fmt.Errorf("ai gateway: %s: %s", response.Status, string(errBody))
	}
	return json.NewDecoder(response.Body).Decode(result)
}

func (gateway *Gateway) newRequest(ctx context.Context, path string, body []byte) (*http.Request, error) {
	url := strings.TrimRight(gateway.config.BaseURL, "/") + path
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	if gateway.config.APIKey != "" {
		request.Header.Set("Authorization", "Bearer "+gateway.config.APIKey)
	}
	return request, nil
}
