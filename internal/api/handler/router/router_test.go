package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/items/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
		wantOrder  []string
	}{
		{name: "Middlewares na ordem da lista", method: http.MethodGet, target: "/v1/items/1", wantStatus: http.StatusNoContent, wantOrder: []string{"primeiro", "segundo", "handler"}},
		{name: "Rota inexistente", method: http.MethodGet, target: "/v1/nada", wantStatus: http.StatusNotFound, wantBody: "SRV_003"},
		{name: "Método não permitido", method: http.MethodDelete, target: "/v1/items/1", wantStatus: http.StatusMethodNotAllowed, wantBody: "SRV_004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader("")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}
