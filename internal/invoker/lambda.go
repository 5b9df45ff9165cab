package invoker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

var ErrNoLanguage = errors.New("language service returned no language_id")

// LambdaAPI is the part of the Lambda client the detector needs.
type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// LanguageDetector resolves an Accept-Language value by synchronously
// invoking the sibling language function.
type LanguageDetector struct {
	client       LambdaAPI
	functionName string
}

func NewLanguageDetector(client LambdaAPI, functionName string) *LanguageDetector {
	return &LanguageDetector{client: client, functionName: functionName}
}

type detectRequest struct {
	Headers map[string]string `json:"headers"`
}

type detectResponse struct {
	Body json.RawMessage `json:"body"`
}

type detectBody struct {
	LanguageID json.RawMessage `json:"language_id"`
}

func (d *LanguageDetector) DetectLanguage(ctx context.Context, acceptLanguage string) (int, error) {
	payload, err := json.Marshal(detectRequest{
		Headers: map[string]string{"Accept-Language": acceptLanguage},
	})
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	out, err := d.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(d.functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return 0, fmt.Errorf("invoke %s: %w", d.functionName, err)
	}
	if out.FunctionError != nil {
		return 0, fmt.Errorf("invoke %s: function error %s: %s", d.functionName, aws.ToString(out.FunctionError), out.Payload)
	}

	return parseLanguage(out.Payload)
}

// parseLanguage reads {"body": {...}} where body may also be a JSON-encoded
// string and language_id a number or a numeric string.
func parseLanguage(payload []byte) (int, error) {
	var resp detectResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	body := []byte(resp.Body)
	var encoded string
	if err := json.Unmarshal(body, &encoded); err == nil {
		body = []byte(encoded)
	}

	var parsed detectBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("decode response body: %w", err)
	}
	if len(parsed.LanguageID) == 0 || string(parsed.LanguageID) == "null" {
		return 0, ErrNoLanguage
	}

	raw := strings.Trim(string(parsed.LanguageID), `"`)
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: got %s", ErrNoLanguage, parsed.LanguageID)
	}
	return id, nil
}
