package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/geosvg/pkg/cache"
	"github.com/matzehuels/geosvg/pkg/config"
	errs "github.com/matzehuels/geosvg/pkg/errors"
	"github.com/matzehuels/geosvg/pkg/pipeline"
)

const testConfig = `
[document]
margin = 1.0

[style]
stroke = "black"

[profiles.roads]
stroke_width = 3.0
`

func newTestServer(t *testing.T, dataDir string) *httptest.Server {
	t.Helper()
	cfg, err := config.Decode(testConfig)
	if err != nil {
		t.Fatalf("config.Decode() error: %v", err)
	}
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(c, nil, logger)
	t.Cleanup(func() { runner.Close() })

	srv := httptest.NewServer(New(runner, logger, Options{Config: cfg, DataDir: dataDir}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Server"); !strings.HasPrefix(got, "geosvg/") {
		t.Errorf("Server = %q, want geosvg/ prefix", got)
	}
	if _, err := uuid.Parse(resp.Header.Get(headerRequestID)); err != nil {
		t.Errorf("X-Request-ID is not a UUID: %v", err)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	srv := newTestServer(t, "")
	id := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set(headerRequestID, id)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(headerRequestID); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}
}

func TestRender(t *testing.T) {
	srv := newTestServer(t, "")

	resp := post(t, srv.URL+"/render", `{"input": "LINESTRING (0 0, 10 10)", "profile": "roads"}`)
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != contentTypeSVG {
		t.Errorf("Content-Type = %q, want %q", ct, contentTypeSVG)
	}
	for _, want := range []string{`<svg xmlns=`, `stroke="black"`, `stroke-width="3"`, `viewBox="-4 -4 18 18"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if got := resp.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache = %q, want MISS", got)
	}

	again := post(t, srv.URL+"/render", `{"input": "LINESTRING (0 0, 10 10)", "profile": "roads"}`)
	if got := again.Header.Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", got)
	}
}

func TestRenderStylesheetStaysInsideStyle(t *testing.T) {
	srv := newTestServer(t, "")

	resp := post(t, srv.URL+"/render", `{"input": "POINT (1 2)", "stylesheet": "</style><script>alert(1)</script>"}`)
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}

	want := "<style><![CDATA[\n</style><script>alert(1)</script>\n]]></style>"
	if !strings.Contains(body, want) {
		t.Errorf("body missing %q:\n%s", want, body)
	}
	if n := strings.Count(body, "<script>"); n != 1 {
		t.Errorf("found %d script tags, want only the one inside CDATA", n)
	}
}

func TestRenderErrors(t *testing.T) {
	srv := newTestServer(t, "")

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   errs.Code
	}{
		{"malformed json", `{"input":`, http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"unknown field", `{"input": "POINT (1 2)", "colour": "red"}`, http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"missing input", `{}`, http.StatusBadRequest, errs.ErrCodeInvalidInput},
		{"bad wkt", `{"input": "POINT (1"}`, http.StatusBadRequest, errs.ErrCodeInvalidFormat},
		{"unknown profile", `{"input": "POINT (1 2)", "profile": "rivers"}`, http.StatusBadRequest, errs.ErrCodeInvalidStyle},
		{"curve", `{"input": "CIRCULARSTRING (0 0, 1 1, 2 0)"}`, http.StatusUnprocessableEntity, errs.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/render", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var got errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if got.Error.Code != tt.wantCode {
				t.Errorf("code = %s, want %s (%s)", got.Error.Code, tt.wantCode, got.Error.Message)
			}
			if got.Error.RequestID == "" {
				t.Error("error body should carry the request id")
			}
		})
	}
}

func TestBounds(t *testing.T) {
	srv := newTestServer(t, "")

	resp := post(t, srv.URL+"/bbox", `{"input": "{\"type\":\"LineString\",\"coordinates\":[[0,0],[10,10]]}"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, readBody(t, resp))
	}
	var got struct {
		ViewBox struct {
			MinX, MinY, Width, Height float64
		} `json:"viewbox"`
		Members int  `json:"members"`
		Cached  bool `json:"cached"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Members != 1 {
		t.Errorf("members = %d, want 1", got.Members)
	}
	if got.ViewBox.Width != 12 || got.ViewBox.Height != 12 {
		t.Errorf("viewbox = %+v, want 12x12", got.ViewBox)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "city"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "city", "park.wkt"), []byte("POLYGON ((0 0, 0 5, 5 5, 5 0, 0 0))"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, dir)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"renders", "/files/city/park.wkt?margin=2", http.StatusOK, `viewBox="-3 -3 11 11"`},
		{"missing", "/files/city/lake.wkt", http.StatusNotFound, "FILE_NOT_FOUND"},
		{"traversal", "/files/city/..%2F..%2Fetc", http.StatusBadRequest, "INVALID_PATH"},
		{"bad margin", "/files/city/park.wkt?margin=wide", http.StatusBadRequest, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			defer resp.Body.Close()
			body := readBody(t, resp)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", resp.StatusCode, tt.wantStatus, body)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body missing %q:\n%s", tt.wantBody, body)
			}
		})
	}
}

func TestFilesDisabledWithoutDataDir(t *testing.T) {
	srv := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/files/a.wkt")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
