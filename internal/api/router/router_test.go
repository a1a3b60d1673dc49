package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/outreachai/outreach-ai-platform/internal/outreach"
	"github.com/outreachai/outreach-ai-platform/internal/profile"
	"github.com/outreachai/outreach-ai-platform/pkg/logging"
)

type stubService struct {
	calls int
}

func (s *stubService) ParseProfile(ctx context.Context, credential string, req outreach.ParseProfileRequest) (*profile.LinkedInProfile, error) {
	s.calls++
	return &profile.LinkedInProfile{Name: "Alex"}, nil
}

func (s *stubService) GenerateMessage(ctx context.Context, credential string, req outreach.GenerateMessageRequest) (string, error) {
	s.calls++
	return "Would love to connect.", nil
}

func newTestRouter(svc outreach.PipelineService) http.Handler {
	logger := logging.Default()
	return New(&Config{
		Logger:          logger,
		OutreachHandler: outreach.NewHandler(svc, logger),
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	})
}

func TestPublicRoutes(t *testing.T) {
	r := newTestRouter(&stubService{})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/generate/legacy", `{"type": "TARGET_PROFILE"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestPipelineRoutesRequireBearer(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc)

	for _, path := range []string{"/parse_profile", "/generate"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
	if svc.calls != 0 {
		t.Fatal("unauthenticated requests must never reach the service")
	}
}

func TestPipelineRoutesWithBearer(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/parse_profile", strings.NewReader(`{"html_content": "<p>Alex</p>"}`))
	req.Header.Set("Authorization", "Bearer sk-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.calls != 1 {
		t.Fatalf("expected one service call, got %d", svc.calls)
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
