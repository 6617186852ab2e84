package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/chat"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/config"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/providers"
	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/web"
)

// stubProvider records the last request and returns a scripted result.
type stubProvider struct {
	lastReq providers.ChatRequest
	resp    *providers.ChatResponse
	err     error
}

func (s *stubProvider) ChatCompletion(ctx context.Context, req providers.ChatRequest) (*providers.ChatResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func (s *stubProvider) GetDefaultModel() string { return "gpt-4o-mini" }

func newTestServer(provider providers.LLMProvider, mutate func(*config.Config)) *httptest.Server {
	cfg := config.DefaultConfig()
	cfg.Provider.APIKey = "test-key"
	if mutate != nil {
		mutate(cfg)
	}
	return httptest.NewServer(web.NewServer(cfg, provider).Handler())
}

func postChat(t *testing.T, baseURL, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(baseURL+"/api/chat", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestChatRelaySuccess(t *testing.T) {
	stub := &stubProvider{resp: &providers.ChatResponse{Choices: []providers.Choice{
		{Message: chat.Message{Role: chat.RoleAssistant, Content: "Try a hydrating shampoo..."}},
	}}}
	ts := newTestServer(stub, nil)
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"model":"whatever-the-client-says","messages":[{"role":"system","content":"seed"},{"role":"user","content":"What shampoo works for dry hair?"}]}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Try a hydrating shampoo...")

	// The server enforces its own model and sampling settings.
	assert.Equal(t, "gpt-4o-mini", stub.lastReq.Model)
	assert.Len(t, stub.lastReq.Messages, 2)
	assert.Equal(t, chat.RoleSystem, stub.lastReq.Messages[0].Role)
}

func TestChatRelayUpstreamErrorPassesThrough(t *testing.T) {
	stub := &stubProvider{err: &providers.APIError{StatusCode: 500, Body: "internal error"}}
	ts := newTestServer(stub, nil)
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"messages":[{"role":"user","content":"hello"}]}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "internal error")
}

func TestChatRelayTransportErrorIsBadGateway(t *testing.T) {
	stub := &stubProvider{err: context.DeadlineExceeded}
	ts := newTestServer(stub, nil)
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"messages":[{"role":"user","content":"hello"}]}`)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "test-key", "key never leaks to the client")
}

func TestChatRelayValidation(t *testing.T) {
	stub := &stubProvider{}
	ts := newTestServer(stub, nil)
	defer ts.Close()

	resp := postChat(t, ts.URL, `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postChat(t, ts.URL, `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	getResp, err := http.Get(ts.URL + "/api/chat")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, getResp.StatusCode)
	getResp.Body.Close()
}

func TestWidgetPageEmbedsSystemPromptNotKey(t *testing.T) {
	stub := &stubProvider{}
	ts := newTestServer(stub, func(cfg *config.Config) {
		cfg.Chat.SystemPrompt = "only discuss beauty topics"
	})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "only discuss beauty topics")
	assert.Contains(t, body, `role:"system"`)
	assert.NotContains(t, body, "test-key")
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&stubProvider{}, nil)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "ok")
}

func TestAuthGatesAPIAndUI(t *testing.T) {
	ts := newTestServer(&stubProvider{}, func(cfg *config.Config) {
		cfg.Server.Username = "admin"
		cfg.Server.Password = "secret"
	})
	defer ts.Close()

	// API without a session is 401.
	resp := postChat(t, ts.URL, `{"messages":[{"role":"user","content":"hello"}]}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// UI redirects to login.
	noRedirect := &http.Client{CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	uiResp, err := noRedirect.Get(ts.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, uiResp.StatusCode)
	assert.Equal(t, "/login", uiResp.Header.Get("Location"))
	uiResp.Body.Close()
}

func TestLoginFlow(t *testing.T) {
	stub := &stubProvider{resp: &providers.ChatResponse{Choices: []providers.Choice{
		{Message: chat.Message{Role: chat.RoleAssistant, Content: "hello"}},
	}}}
	ts := newTestServer(stub, func(cfg *config.Config) {
		cfg.Server.Username = "admin"
		cfg.Server.Password = "secret"
	})
	defer ts.Close()

	noRedirect := &http.Client{CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}}

	// Wrong credentials are rejected without a cookie.
	bad, err := noRedirect.PostForm(ts.URL+"/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	require.NoError(t, err)
	assert.Empty(t, bad.Cookies())
	bad.Body.Close()

	// Valid credentials set a session cookie.
	good, err := noRedirect.PostForm(ts.URL+"/login", url.Values{"username": {"admin"}, "password": {"secret"}})
	require.NoError(t, err)
	require.NotEmpty(t, good.Cookies())
	cookie := good.Cookies()[0]
	good.Body.Close()

	// The cookie unlocks the API.
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/chat", strings.NewReader(`{"messages":[{"role":"user","content":"hello"}]}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, authed.StatusCode)
	authed.Body.Close()
}
