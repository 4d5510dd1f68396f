package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/aerostudent/teamreg/internal/middleware"
	"github.com/aerostudent/teamreg/internal/testutil"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	testutil.SeedAttendee(t, db, testutil.Attendee{
		ID: 1, Order: "ABC", Index: 1, FirstName: "Jean", LastName: "Dupont",
		Gender: "Male", Sports: []string{"Football"}, School: "ENAC",
	})
	r := newRouter(db, testutil.WriteRules(t), "s3cret", zap.NewNop().Sugar())

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		secret     string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "sport rules", method: http.MethodGet, path: "/sport/Football?gender=M", wantStatus: http.StatusOK},
		{name: "attendee sports", method: http.MethodGet, path: "/attendee/sports/ABC-1", wantStatus: http.StatusOK},
		{name: "team lookup", method: http.MethodGet, path: "/team/does-not-exist", wantStatus: http.StatusNotFound},
		{
			name: "team create without secret", method: http.MethodPost, path: "/team/create",
			body: `{}`, wantStatus: http.StatusUnauthorized,
		},
		{
			name: "team create with secret", method: http.MethodPost, path: "/team/create",
			body: `{}`, secret: "s3cret", wantStatus: http.StatusBadRequest,
		},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.secret != "" {
				req.Header.Set(middleware.SecretHeader, tt.secret)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}
