package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveNotifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications/active", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"notification_type":"badge","notification_json":{"level":2}}]`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetToken("tok")
	items, err := c.ActiveNotifications()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "badge", items[0].NotificationType)
	assert.JSONEq(t, `{"level":2}`, string(items[0].NotificationJSON))
}

func TestQuestions_MessageAndList(t *testing.T) {
	body := `{"message":"No questions found."}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "null", r.Header.Get("language_id"))
		assert.Equal(t, "es", r.Header.Get("Accept-Language"))
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	c.SetLanguage("null", "es")

	res, err := c.Questions()
	require.NoError(t, err)
	assert.Equal(t, "No questions found.", res.Message)

	body = `{"questions":[{"id":3,"question":"Q?"}],"total_user_count":5,"language_id":165}`
	res, err = c.Questions()
	require.NoError(t, err)
	assert.Empty(t, res.Message)
	assert.Equal(t, int64(5), res.TotalUserCount)
	require.Len(t, res.Questions, 1)
	assert.Equal(t, "Q?", res.Questions[0].Question)
}

func TestDeletePicture_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"You are not authorized to access this resource."}`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL).DeletePicture()
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "You are not authorized to access this resource.", apiErr.Message)
}
