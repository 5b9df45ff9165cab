package client

// http_client.go = HTTP client for the profilehub API.

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"profilehub/internal/microservices/http-api/dto"
)

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL        string
	httpClient     *http.Client
	token          string
	languageID     string
	acceptLanguage string
}

// QuestionsResult is either a question list or a "no questions" message.
type QuestionsResult struct {
	dto.QuestionsResponse
	Message string `json:"message,omitempty"`
}

// APIError is a non-2xx envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// SetLanguage sets the language_id and Accept-Language headers of later requests.
func (c *HTTPClient) SetLanguage(languageID, acceptLanguage string) {
	c.languageID = languageID
	c.acceptLanguage = acceptLanguage
}

func (c *HTTPClient) ActiveNotifications() ([]dto.NotificationResponse, error) {
	var out []dto.NotificationResponse
	if err := c.do(http.MethodGet, "/api/v1/notifications/active", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) DeletePicture() (string, error) {
	var out dto.MessageResponse
	if err := c.do(http.MethodDelete, "/api/v1/profile/picture", &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) Questions() (*QuestionsResult, error) {
	var out QuestionsResult
	if err := c.do(http.MethodGet, "/api/v1/questions", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) do(method, path string, out interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.languageID != "" {
		req.Header.Set("language_id", c.languageID)
	}
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg dto.MessageResponse
		if json.Unmarshal(body, &msg) != nil || msg.Message == "" {
			msg.Message = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}
	return json.Unmarshal(body, out)
}
