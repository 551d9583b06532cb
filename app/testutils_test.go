package main

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/store"
)

type testApp struct {
	*application
	backend *fakeBackend
	cache   *common.Cache
}

func newTestApplication(t *testing.T) *testApp {
	t.Helper()

	backend := newFakeBackend()
	bs := httptest.NewServer(backend.handler())
	t.Cleanup(bs.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api, err := apiclient.New(bs.URL, bs.Client(), logger)
	require.NoError(t, err)

	templates, err := newTemplateCache()
	require.NoError(t, err)

	cfg := &Config{
		Environment:    "test",
		Version:        "test",
		APIBaseURL:     bs.URL,
		PublicURL:      "http://blogfront.test",
		SessionTTL:     time.Hour,
		RateLimitRPS:   2,
		RateLimitBurst: 4,
	}

	cache := common.NewCache(time.Hour, time.Minute)

	return &testApp{
		application: &application{
			config:    cfg,
			logger:    logger,
			api:       api,
			sessions:  store.New(store.NewMemoryRepository(), cache, cfg.SessionTTL),
			broker:    common.DiscardProducer{},
			templates: templates,
			limiter:   newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		},
		backend: backend,
		cache:   cache,
	}
}

type testServer struct {
	*httptest.Server
}

// newTestServer serves h to a client that keeps cookies and never follows redirects.
func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	ts.Client().Jar = jar
	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &testServer{ts}
}

func (ts *testServer) do(t *testing.T, req *http.Request) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return rs.StatusCode, rs.Header, string(bytes.TrimSpace(body))
}

func (ts *testServer) get(t *testing.T, urlPath string) (int, http.Header, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+urlPath, nil)
	require.NoError(t, err)

	return ts.do(t, req)
}

func (ts *testServer) postForm(t *testing.T, urlPath string, form url.Values) (int, http.Header, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+urlPath, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return ts.do(t, req)
}

type testFile struct {
	field    string
	filename string
	content  []byte
}

func (ts *testServer) postMultipart(t *testing.T, urlPath string, fields map[string]string, files ...testFile) (int, http.Header, string) {
	t.Helper()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}

	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+urlPath, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return ts.do(t, req)
}

// login signs the test client in as the backend's user.
func (ts *testServer) login(t *testing.T) {
	t.Helper()

	code, header, _ := ts.postForm(t, "/login", url.Values{"email": {testEmail}, "password": {testPassword}})
	require.Equal(t, http.StatusSeeOther, code)
	require.Equal(t, "/", header.Get("Location"))
}

// follow fetches the page a redirect points at, so the notices it queued are rendered.
func (ts *testServer) follow(t *testing.T, header http.Header) string {
	t.Helper()

	location := header.Get("Location")
	require.NotEmpty(t, location)

	_, _, body := ts.get(t, location)
	return body
}
