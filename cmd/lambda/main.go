// AWS Lambda handler exposing the completion relay through API Gateway.
// The provider API key stays in the function environment; clients post an
// OpenAI-shaped request body and receive the provider response verbatim.
//
// Environment variables:
//   LOREALBOT_CONFIG_JSON       - Full config JSON (alternative to config file)
//   LOREALBOT_CONFIG_PATH       - Config file path (default: config.json)
//   LOREALBOT_PROVIDER_API_KEY  - Provider API key (overrides config)

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/config"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/logger"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/providers"
)

var (
	cfg      *config.Config
	provider providers.LLMProvider
	initOnce sync.Once
	initErr  error
)

func initialize() error {
	initOnce.Do(func() {
		initErr = doInit()
	})
	return initErr
}

func doInit() error {
	configPath := os.Getenv("LOREALBOT_CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	var err error
	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider = providers.NewOpenAIProvider(cfg.Provider.APIKey, cfg.Provider.Model,
		providers.WithAPIBase(cfg.Provider.APIBase),
		providers.WithTimeout(time.Duration(cfg.Provider.TimeoutSeconds)*time.Second),
	)

	logger.InfoCF("lambda", "Initialized", map[string]interface{}{"model": cfg.Provider.Model})
	return nil
}

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := initialize(); err != nil {
		logger.ErrorCF("lambda", "Init error", map[string]interface{}{"error": err.Error()})
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	if request.HTTPMethod != "" && request.HTTPMethod != http.MethodPost {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusMethodNotAllowed}, nil
	}

	var req providers.ChatRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: "bad request"}, nil
	}
	if len(req.Messages) == 0 {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: "messages is required"}, nil
	}

	req.Model = cfg.Provider.Model
	req.Temperature = cfg.Provider.Temperature
	req.MaxTokens = cfg.Provider.MaxTokens

	resp, err := provider.ChatCompletion(ctx, req)
	if err != nil {
		var apiErr *providers.APIError
		if errors.As(err, &apiErr) {
			return events.APIGatewayProxyResponse{StatusCode: apiErr.StatusCode, Body: apiErr.Body}, nil
		}
		logger.ErrorCF("lambda", "Provider request failed", map[string]interface{}{"error": err.Error()})
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadGateway, Body: "upstream request failed"}, nil
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func main() {
	lambda.Start(handler)
}
