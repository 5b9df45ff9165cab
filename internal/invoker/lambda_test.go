package invoker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLambdaAPI struct {
	mock.Mock
}

func (m *MockLambdaAPI) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lambda.InvokeOutput), args.Error(1)
}

func TestDetectLanguage_SendsHintAndParsesBody(t *testing.T) {
	client := new(MockLambdaAPI)
	client.On("Invoke", mock.Anything, mock.MatchedBy(func(in *lambda.InvokeInput) bool {
		var req struct {
			Headers map[string]string `json:"headers"`
		}
		if err := json.Unmarshal(in.Payload, &req); err != nil {
			return false
		}
		return aws.ToString(in.FunctionName) == "ProfilesGetLanguageDev" &&
			in.InvocationType == types.InvocationTypeRequestResponse &&
			req.Headers["Accept-Language"] == "es-ES"
	})).Return(&lambda.InvokeOutput{
		StatusCode: 200,
		Payload:    []byte(`{"statusCode":200,"body":"{\"language_id\": 140}"}`),
	}, nil)

	id, err := NewLanguageDetector(client, "ProfilesGetLanguageDev").DetectLanguage(context.Background(), "es-ES")
	require.NoError(t, err)
	assert.Equal(t, 140, id)
	client.AssertExpectations(t)
}

func TestDetectLanguage_Failures(t *testing.T) {
	tests := []struct {
		name string
		out  *lambda.InvokeOutput
		err  error
	}{
		{"unreachable", nil, errors.New("dial tcp: i/o timeout")},
		{"function error", &lambda.InvokeOutput{FunctionError: aws.String("Unhandled"), Payload: []byte(`{"errorMessage":"boom"}`)}, nil},
		{"not json", &lambda.InvokeOutput{Payload: []byte(`oops`)}, nil},
		{"missing language", &lambda.InvokeOutput{Payload: []byte(`{"body":{}}`)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockLambdaAPI)
			client.On("Invoke", mock.Anything, mock.Anything).Return(tt.out, tt.err)

			_, err := NewLanguageDetector(client, "ProfilesGetLanguage").DetectLanguage(context.Background(), "fr")
			assert.Error(t, err)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		payload string
		want    int
		wantErr bool
	}{
		{`{"body":{"language_id":47}}`, 47, false},
		{`{"body":{"language_id":"50"}}`, 50, false},
		{`{"body":"{\"language_id\":\"165\"}"}`, 165, false},
		{`{"body":{"language_id":null}}`, 0, true},
		{`{"body":{"language_id":"x"}}`, 0, true},
		{`{"body":{"language_id":0}}`, 0, true},
	}

	for _, tt := range tests {
		got, err := parseLanguage([]byte(tt.payload))
		if tt.wantErr {
			assert.Error(t, err, tt.payload)
			continue
		}
		require.NoError(t, err, tt.payload)
		assert.Equal(t, tt.want, got, tt.payload)
	}
}
