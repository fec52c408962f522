package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicebrief/internal/api/v1/dto"
	"voicebrief/internal/app/auth"
	"voicebrief/internal/app/model"
	"voicebrief/internal/app/repository"
	"voicebrief/internal/app/session"
)

const testTemplates = `
{{define "index.html"}}home {{.flash}}{{end}}
{{define "signup.html"}}signup {{.flash}}{{end}}
{{define "login.html"}}login {{.flash}}{{end}}
{{define "dashboard.html"}}dashboard for {{.username}}: {{.flash}} ({{len .history}} items){{end}}
`

type memUserDAO struct {
	users map[string]*model.User
}

func (m *memUserDAO) CreateUser(_ context.Context, username, email, passwordHash string) error {
	if _, ok := m.users[username]; ok {
		return repository.ErrUsernameTaken
	}
	m.users[username] = &model.User{Username: username, Email: email, PasswordHash: passwordHash}
	return nil
}

func (m *memUserDAO) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

type stubDigest struct {
	response *dto.UploadResponse
	err      error
	history  []dto.SummaryItem
}

func (s *stubDigest) ProcessUpload(_ context.Context, username, filename string, r io.Reader) (*dto.UploadResponse, error) {
	io.Copy(io.Discard, r)
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubDigest) History(_ context.Context, username string) ([]dto.SummaryItem, error) {
	return s.history, nil
}

func (s *stubDigest) HistoryRecords(_ context.Context, username string) ([]model.SummaryRecord, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, digest *stubDigest) (*gin.Engine, *session.Manager) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))

	sessions := session.NewManager("0123456789abcdef0123456789abcdef", time.Hour)
	container := &ServiceContainer{
		AuthService:   auth.NewService(&memUserDAO{users: make(map[string]*model.User)}),
		Sessions:      sessions,
		DigestService: digest,
	}
	RegisterRoutes(router, container)

	return router, sessions
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func flashValue(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "voicebrief_flash" && cookie.MaxAge >= 0 {
			value, err := url.QueryUnescape(cookie.Value)
			require.NoError(t, err)
			return value
		}
	}
	return ""
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	return nil
}

func TestSignupFlow(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cret"},
	}

	rec := postForm(router, "/signup", form)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "Signup successful, please log in", flashValue(t, rec))

	// Second signup with the same username bounces back to the form.
	rec = postForm(router, "/signup", form)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signup", rec.Header().Get("Location"))
	assert.Equal(t, "Username already exists, please choose a different one", flashValue(t, rec))
}

func TestSignup_InvalidForm(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	rec := postForm(router, "/signup", url.Values{
		"username": {"alice"},
		"email":    {"not-an-email"},
		"password": {"s3cret"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/signup", rec.Header().Get("Location"))
}

func signupAndLogin(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()

	rec := postForm(router, "/signup", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"s3cret"},
	})
	require.Equal(t, http.StatusFound, rec.Code)

	rec = postForm(router, "/login", url.Values{
		"username": {"alice"},
		"password": {"s3cret"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	return cookie
}

func TestLoginFlow(t *testing.T) {
	router, sessions := newTestRouter(t, &stubDigest{})

	cookie := signupAndLogin(t, router)
	username, err := sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})
	signupAndLogin(t, router)

	rec := postForm(router, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "Invalid username or password", flashValue(t, rec))
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_UnknownUser(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	rec := postForm(router, "/login", url.Values{
		"username": {"nobody"},
		"password": {"s3cret"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "Invalid username or password", flashValue(t, rec))
}

func TestDashboard_RequiresSession(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "You are not logged in", flashValue(t, rec))
}

func TestDashboard_WithSession(t *testing.T) {
	digest := &stubDigest{history: []dto.SummaryItem{
		{ID: 1, FileName: "standup.wav", Summary: "roadmap"},
	}}
	router, _ := newTestRouter(t, digest)
	cookie := signupAndLogin(t, router)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard for alice")
	assert.Contains(t, rec.Body.String(), "(1 items)")
}

func TestLogout_ClearsSession(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})
	signupAndLogin(t, router)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func multipartUpload(t *testing.T, fieldName, filename string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("RIFF fake audio"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestUpload_RequiresSessionJSON(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	body, contentType := multipartUpload(t, "audio", "standup.wav")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var apiErr map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "You are not logged in", apiErr["message"])
}

func TestUpload_Success(t *testing.T) {
	digest := &stubDigest{response: &dto.UploadResponse{
		Message:       "Audio processed successfully",
		Transcription: "we shipped the release",
		Summary:       "release shipped",
	}}
	router, _ := newTestRouter(t, digest)
	cookie := signupAndLogin(t, router)

	body, contentType := multipartUpload(t, "audio", "standup.wav")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Audio processed successfully", resp.Message)
	assert.Equal(t, "release shipped", resp.Summary)
}

func TestUpload_MissingFilePart(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})
	cookie := signupAndLogin(t, router)

	body, contentType := multipartUpload(t, "", "")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "No file part", apiErr["message"])
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHomeShowsFlash(t *testing.T) {
	router, _ := newTestRouter(t, &stubDigest{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "voicebrief_flash", Value: url.QueryEscape("You have been logged out")})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have been logged out")
}
