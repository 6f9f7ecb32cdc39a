package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/profile-gallery/internal/gallery"
	"github.com/janisto/profile-gallery/internal/http/health"
	"github.com/janisto/profile-gallery/internal/platform/config"
	"github.com/janisto/profile-gallery/internal/service/randomuser"
)

func testConfig(upstream string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0"},
		RandomUser: config.RandomUserConfig{
			URL:          upstream,
			Results:      12,
			Nationality:  "us",
			FetchTimeout: time.Second,
		},
		Gallery: config.GalleryConfig{MaxSessions: 4},
		Logging: config.LoggingConfig{Level: "info"},
	}
}

func testServer() http.Handler {
	store := gallery.NewStore()
	store.Replace(randomuser.DemoProfiles())
	registry := gallery.NewRegistry(store, 4)
	router := newRouter(testConfig("https://randomuser.me/api/"), registry, "test")
	router.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	return router
}

func serve(srv http.Handler, method, target, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "test-req")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp := httptest.NewRecorder()
	srv.ServeHTTP(resp, req)
	return resp
}

func TestHealth(t *testing.T) {
	resp := serve(testServer(), http.MethodGet, "/health", "application/json")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", resp.Code)
	}

	var h health.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &h); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if h.Status != "healthy" || h.Profiles != 3 {
		t.Fatalf("unexpected health %+v", h)
	}
}

func TestNotFoundReturnsProblemDetails(t *testing.T) {
	for _, target := range []string{"/missing", "/v1/missing"} {
		resp := serve(testServer(), http.MethodGet, target, "")
		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404 got %d", target, resp.Code)
		}
		if ct := resp.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("%s: expected application/problem+json content type, got %q", target, ct)
		}

		var problem huma.ErrorModel
		if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
			t.Fatalf("failed to unmarshal 404 response: %v", err)
		}
		if problem.Status != http.StatusNotFound || problem.Title != "Not Found" {
			t.Fatalf("unexpected problem %+v", problem)
		}
	}
}

func TestMethodNotAllowedReturnsProblemDetails(t *testing.T) {
	resp := serve(testServer(), http.MethodPost, "/health", "")
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", resp.Code)
	}
	if allow := resp.Header().Get("Allow"); !strings.Contains(allow, http.MethodGet) {
		t.Fatalf("expected Allow header to list GET, got %q", allow)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("expected application/problem+json content type, got %q", ct)
	}
}

func TestRecovererReturnsProblemDetails(t *testing.T) {
	resp := serve(testServer(), http.MethodGet, "/panic", "")
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}

	var problem huma.ErrorModel
	if err := json.Unmarshal(resp.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to unmarshal 500 response: %v", err)
	}
	if problem.Detail != "internal server error" {
		t.Fatalf("unexpected detail: %s", problem.Detail)
	}
}

func TestGalleryPageServed(t *testing.T) {
	resp := serve(testServer(), http.MethodGet, "/", "text/html")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("unexpected content type %q", resp.Header().Get("Content-Type"))
	}
	csp := resp.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "img-src 'self' https://randomuser.me") {
		t.Fatalf("expected avatar host in CSP, got %q", csp)
	}
}

func TestAPIMountedUnderPrefix(t *testing.T) {
	srv := testServer()

	resp := serve(srv, http.MethodPost, "/v1/sessions", "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); !strings.HasPrefix(loc, "/v1/sessions/") {
		t.Fatalf("unexpected Location %q", loc)
	}

	resp = serve(srv, http.MethodGet, "/v1/profiles", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestWildcardAcceptReturnsJSON(t *testing.T) {
	srv := testServer()
	for _, accept := range []string{"*/*", "application/*", "", "text/plain"} {
		resp := serve(srv, http.MethodGet, "/v1/profiles", accept)
		if resp.Code != http.StatusOK {
			t.Fatalf("accept %q: expected 200 OK, got %d", accept, resp.Code)
		}
		if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
			t.Fatalf("accept %q: expected application/json, got %q", accept, ct)
		}
	}
}

func TestCBORAcceptHeader(t *testing.T) {
	resp := serve(testServer(), http.MethodGet, "/v1/profiles", "application/cbor")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor content type, got %q", ct)
	}
}

func TestOpenAPICBORContentTypes(t *testing.T) {
	api := humachi.New(chi.NewRouter(), huma.DefaultConfig("Test API", "1.0.0"))
	addCBORContent(api)

	type TestInput struct {
		Body struct {
			Name string `json:"name"`
		}
	}
	type TestOutput struct {
		Body struct {
			Message string `json:"message"`
		}
	}
	huma.Post(api, "/test", func(_ context.Context, input *TestInput) (*TestOutput, error) {
		out := &TestOutput{}
		out.Body.Message = "Hello, " + input.Body.Name
		return out, nil
	})
	huma.Get(api, "/no-body", func(_ context.Context, _ *struct{}) (*struct{}, error) {
		return nil, nil
	})

	op := api.OpenAPI().Paths["/test"].Post
	if _, ok := op.RequestBody.Content["application/cbor"]; !ok {
		t.Fatal("expected application/cbor in request body content")
	}
	if _, ok := op.Responses["200"].Content["application/cbor"]; !ok {
		t.Fatal("expected application/cbor in 200 response content")
	}
	if api.OpenAPI().Paths["/no-body"].Get.RequestBody != nil {
		t.Fatal("expected no request body for GET")
	}
}

func TestLoadProfiles(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("results") != "12" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"results":[{"name":{"first":"ann","last":"lee"}},{"name":{"first":"bo","last":"kim"}}]}`))
	}))
	defer upstream.Close()

	store := gallery.NewStore()
	if n := loadProfiles(context.Background(), testConfig(upstream.URL+"/api/"), store); n != 2 {
		t.Fatalf("expected 2 profiles, got %d", n)
	}
}

func TestLoadProfilesFailureLeavesStoreEmpty(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	store := gallery.NewStore()
	if n := loadProfiles(context.Background(), testConfig(upstream.URL), store); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
	if !store.Loaded() {
		t.Fatal("expected store marked loaded")
	}
}

func TestImageHosts(t *testing.T) {
	if got := imageHosts("https://randomuser.me/api/"); len(got) != 1 || got[0] != "https://randomuser.me" {
		t.Fatalf("unexpected hosts %v", got)
	}
	if got := imageHosts("not a url"); got != nil {
		t.Fatalf("expected no hosts, got %v", got)
	}
}

func TestServerShutdownOnSignal(t *testing.T) {
	srv := newHTTPServer("0", testServer())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}

	select {
	case err := <-listenErr:
		t.Fatalf("unexpected listen error after shutdown: %v", err)
	default:
	}
}

func TestServerConfiguration(t *testing.T) {
	srv := newHTTPServer("8080", http.NotFoundHandler())

	if srv.Addr != ":8080" {
		t.Errorf("expected :8080, got %s", srv.Addr)
	}
	if srv.ReadTimeout != 5*time.Second {
		t.Errorf("expected ReadTimeout 5s, got %v", srv.ReadTimeout)
	}
	if srv.ReadHeaderTimeout != 2*time.Second {
		t.Errorf("expected ReadHeaderTimeout 2s, got %v", srv.ReadHeaderTimeout)
	}
	if srv.WriteTimeout != 10*time.Second {
		t.Errorf("expected WriteTimeout 10s, got %v", srv.WriteTimeout)
	}
	if srv.IdleTimeout != 60*time.Second {
		t.Errorf("expected IdleTimeout 60s, got %v", srv.IdleTimeout)
	}
	if srv.MaxHeaderBytes != 64<<10 {
		t.Errorf("expected MaxHeaderBytes 64KB, got %d", srv.MaxHeaderBytes)
	}
}

func TestVersionVariable(t *testing.T) {
	if Version != "dev" {
		t.Errorf("expected default Version 'dev', got %q", Version)
	}
}
