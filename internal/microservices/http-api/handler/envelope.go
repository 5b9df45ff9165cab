package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Envelope is the response shape shared by every endpoint and transport.
type Envelope struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded string            `json:"isBase64Encoded"`
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": "true",
	}
}

func newEnvelope(status int, body []byte) Envelope {
	return Envelope{
		StatusCode:      status,
		Headers:         corsHeaders(),
		Body:            string(body),
		IsBase64Encoded: "false",
	}
}

// internalEnvelope is used when even the payload cannot be encoded.
func internalEnvelope(message string) Envelope {
	body, _ := json.Marshal(gin.H{"message": message})
	return newEnvelope(http.StatusInternalServerError, body)
}

// Write sends the envelope as a plain HTTP response.
func (e Envelope) Write(c *gin.Context) {
	for k, v := range e.Headers {
		c.Header(k, v)
	}
	c.Data(e.StatusCode, "application/json; charset=utf-8", []byte(e.Body))
}

// Request is the transport-neutral input of an endpoint.
type Request struct {
	Headers   map[string]string
	RequestID string
}

// Header looks a header up case-insensitively.
func (r Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// RequestFromHTTP keeps the first value of every header.
func RequestFromHTTP(h http.Header, requestID string) Request {
	headers := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			headers[k] = v[0]
		}
	}
	return Request{Headers: headers, RequestID: requestID}
}
