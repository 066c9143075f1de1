package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		url         string
		expected    Page
		expectError string
	}{
		{url: "/", expected: Page{Offset: 0, Limit: DefaultPageLimit}},
		{url: "/?offset=&limit=", expected: Page{Offset: 0, Limit: DefaultPageLimit}},
		{url: "/?offset=40&limit=20", expected: Page{Offset: 40, Limit: 20}},
		{url: "/?limit=100", expected: Page{Offset: 0, Limit: MaxPageLimit}},
		{url: "/?offset=-1", expectError: "invalid offset parameter"},
		{url: "/?offset=two", expectError: "invalid offset parameter"},
		{url: "/?limit=0", expectError: "invalid limit parameter: must be between 1 and 100"},
		{url: "/?limit=101", expectError: "invalid limit parameter"},
		{url: "/?offset=5&limit=1.5", expectError: "invalid limit parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			page, err := ParsePage(c)
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				assert.Equal(t, Page{}, page)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		value       string
		expected    int64
		expectError bool
	}{
		{value: "1", expected: 1},
		{value: "9000", expected: 9000},
		{value: "0", expectError: true},
		{value: "-4", expectError: true},
		{value: "abc", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			id, err := ParseIDParam(c, "id")
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestParseBoolQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		url         string
		expected    bool
		expectError bool
	}{
		{url: "/", expected: false},
		{url: "/?include_deleted=true", expected: true},
		{url: "/?include_deleted=1", expected: true},
		{url: "/?include_deleted=false", expected: false},
		{url: "/?include_deleted=maybe", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			value, err := ParseBoolQuery(c, "include_deleted", false)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}
