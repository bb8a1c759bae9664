package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetingHandler(t *testing.T) {
	router := gin.New()
	router.GET("/hello/:name", GreetingHandler)

	tests := []struct {
		name    string
		segment string
		want    string
	}{
		{name: "plain name", segment: "Maria", want: "Olá, Maria!"},
		{name: "hyphenated name", segment: "Ana-Clara", want: "Olá, Ana-Clara!"},
		{name: "name with space", segment: "João Silva", want: "Olá, João Silva!"},
		{name: "single letter", segment: "Q", want: "Olá, Q!"},
		{name: "markup characters", segment: "<b>&", want: "Olá, <b>&!"},
		{name: "digits only", segment: "42", want: "Olá, 42!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/hello/"+url.PathEscape(tt.segment), nil)

			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var got MessageResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got.Message)
		})
	}
}
