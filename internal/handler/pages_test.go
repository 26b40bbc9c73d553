package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rockguard/internal/dashboard"
	"rockguard/internal/mapview"
	"rockguard/internal/service"
	"rockguard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHTMLContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(tmpl)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestPageHandler_Landing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPageHandler(new(MockDashboardService))

	c, w := newHTMLContext(t, http.MethodGet, "/")
	handler.Landing(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Explore Our System")
	assert.NotContains(t, w.Body.String(), "leaflet")
	assert.NotContains(t, w.Body.String(), "Thanks, we will be in touch")

	c, w = newHTMLContext(t, http.MethodGet, "/?sent=1")
	handler.Landing(c)
	assert.Contains(t, w.Body.String(), "Thanks, we will be in touch")
}

func TestPageHandler_System(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := dashboard.NewStore(dashboard.Config{Map: mapview.Options{Zoom: mapview.DefaultZoom}})
	defer store.Close()
	handler := NewPageHandler(service.NewDashboardService(store, mapview.DefaultHeatRadius))

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedActive string
	}{
		{name: "default mine", target: "/system", expectedStatus: http.StatusOK, expectedActive: "Jharia Coalfield"},
		{name: "preselected mine", target: "/system?mine=Kolar+Gold+Fields", expectedStatus: http.StatusOK, expectedActive: "Kolar Gold Fields"},
		{name: "unknown mine", target: "/system?mine=Atlantis", expectedStatus: http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newHTMLContext(t, http.MethodGet, tt.target)
			handler.System(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusFound {
				assert.Equal(t, "/system", w.Header().Get("Location"))
				return
			}
			body := w.Body.String()
			assert.Contains(t, body, fmt.Sprintf(`class="mine active" data-mine="%s"`, tt.expectedActive))
			assert.Contains(t, body, `id="mine-map"`)
			assert.Contains(t, body, "leaflet")
		})
	}
}

func TestPageHandler_SystemServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := new(MockDashboardService)
	mockSvc.On("CreateSession", mock.Anything, "").Return((*dashboard.Snapshot)(nil), assert.AnError)
	handler := NewPageHandler(mockSvc)

	c, w := newHTMLContext(t, http.MethodGet, "/system")
	handler.System(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockSvc.AssertExpectations(t)
}
