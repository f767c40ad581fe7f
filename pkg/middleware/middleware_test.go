package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	md "github.com/Astemirdum/myshelf/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSessionUser(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		userName     string
		expectedCode int
		expectedBody string
	}{
		{name: "ok", userName: "reader", expectedCode: http.StatusOK, expectedBody: "reader"},
		{name: "missing header", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"username is required"}` + "\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				userName, ok := md.UserName(c.Request().Context())
				require.True(t, ok)
				return c.String(http.StatusOK, userName)
			}, md.SessionUser)

			r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.userName != "" {
				r.Header.Set(md.XUserNameHeader, tt.userName)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}
