// Package apiclient implements the JSON POST helper used to talk to the booking backend.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/VladPetriv/busbooker/pkg/logger"
	"resty.dev/v3"
)

// NetworkErrorMessage is the message of the failure response returned when a request could not be completed.
const NetworkErrorMessage = "Network error occurred"

// Response represents a parsed JSON response body.
type Response map[string]any

// Success reports whether the response carries "success": true.
func (r Response) Success() bool {
	success, ok := r["success"].(bool)
	return ok && success
}

// Message returns the "message" field of the response if it is a string.
func (r Response) Message() string {
	message, _ := r["message"].(string)
	return message
}

// NetworkErrorResponse returns a fresh copy of the fixed failure response.
func NetworkErrorResponse() Response {
	return Response{
		"success": false,
		"message": NetworkErrorMessage,
	}
}

// Client sends JSON requests to a backend.
type Client struct {
	httpClient *resty.Client
	logger     *logger.Logger
}

// Options represents options for creating a new Client.
type Options struct {
	// BaseURL is prepended to relative endpoints. Absolute endpoints are used as is.
	BaseURL string
	// HTTPClient is an optional underlying client, http.DefaultClient settings are used when nil.
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// New creates a new instance of Client.
func New(opts Options) *Client {
	httpClient := resty.New()
	if opts.HTTPClient != nil {
		httpClient = resty.NewWithClient(opts.HTTPClient)
	}

	log := opts.Logger.Named("apiclient")

	httpClient.
		SetBaseURL(opts.BaseURL).
		SetRetryCount(0).
		SetLogger(logger.NewRestyLogger(log))

	return &Client{
		httpClient: httpClient,
		logger:     log,
	}
}

// MakeAPIRequest sends data as a JSON body with POST method to endpoint and returns the decoded JSON response.
// Any status code is accepted as long as the body is a JSON object. Network failures and non-JSON bodies
// are never returned as errors: the result is NetworkErrorResponse instead.
// A nil data is sent as an empty JSON object.
func (c *Client) MakeAPIRequest(ctx context.Context, endpoint string, data map[string]any) Response {
	logger := c.logger
	logger.Debug().Str("endpoint", endpoint).Interface("data", data).Msg("got args")

	if data == nil {
		data = map[string]any{}
	}

	result, err := c.post(ctx, endpoint, data)
	if err != nil {
		logger.Error().Err(err).Str("endpoint", endpoint).Msg("API request failed")
		return NetworkErrorResponse()
	}

	logger.Debug().Interface("result", result).Msg("got response")
	return result
}

func (c *Client) post(ctx context.Context, endpoint string, data map[string]any) (Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	var result Response
	err = json.Unmarshal(response.Bytes(), &result)
	if err != nil {
		return nil, fmt.Errorf("decode response body(statusCode: %d): %w", response.StatusCode(), err)
	}
	if result == nil {
		return nil, fmt.Errorf("response body is not a JSON object(statusCode: %d)", response.StatusCode())
	}

	return result, nil
}

// Close releases idle connections of the underlying client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}
