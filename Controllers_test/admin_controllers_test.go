package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwencafe/website/middlewares"
	"github.com/kwencafe/website/models"
	"github.com/kwencafe/website/utils"
)

// adminUpstream fakes the café API's admin surface: a login endpoint plus
// bearer-checked collection reads, with every request recorded.
type adminUpstream struct {
	mu       sync.Mutex
	requests []string
}

func (a *adminUpstream) record(r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, r.Method+" "+r.URL.Path)
}

func (a *adminUpstream) saw(method, path string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, req := range a.requests {
		if req == method+" "+path {
			return true
		}
	}
	return false
}

func (a *adminUpstream) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.record(r)

		if r.Method == "POST" && r.URL.Path == "/admin/login" {
			var creds models.AdminLogin
			json.NewDecoder(r.Body).Decode(&creds)
			if creds.Username != "admin" || creds.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail": "Неверный логин или пароль"}`))
				return
			}
			json.NewEncoder(w).Encode(models.Token{AccessToken: "tok-abc", TokenType: "bearer"})
			return
		}

		if r.Header.Get("Authorization") != "Bearer tok-abc" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Not authenticated"}`))
			return
		}

		switch {
		case r.Method == "GET" && r.URL.Path == "/admin/categories":
			json.NewEncoder(w).Encode([]models.Category{
				{ID: 1, Name: "Кофе", Slug: "coffee"},
			})
		case r.Method == "GET" && r.URL.Path == "/admin/menu/items":
			json.NewEncoder(w).Encode([]models.MenuItem{
				{ID: 10, Name: "Капучино", Price: 250, CategoryID: 1, IsAvailable: true},
			})
		case r.Method == "GET" && r.URL.Path == "/admin/banners":
			json.NewEncoder(w).Encode([]models.Banner{})
		case r.Method == "GET" && r.URL.Path == "/admin/reservations":
			json.NewEncoder(w).Encode([]models.Reservation{
				{ID: 30, Name: "Иван", Phone: "+79990000000", Guests: 2, Status: models.ReservationPending},
			})
		case r.Method == "DELETE":
			w.Write([]byte(`{"ok": true}`))
		default:
			http.NotFound(w, r)
		}
	})
}

func postForm(path string, form url.Values) *http.Request {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAdminDashboardRedirectsAnonymousToLogin(t *testing.T) {
	upstream := &adminUpstream{}
	r := newSiteRouter(t, upstream.handler())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdminLoginSetsCookieAndOpensDashboard(t *testing.T) {
	upstream := &adminUpstream{}
	r := newSiteRouter(t, upstream.handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login", url.Values{
		"username": {"admin"},
		"password": {"secret"},
	}))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookieName {
			cookie = c
		}
	}
	if assert.NotNil(t, cookie) {
		assert.NotEmpty(t, cookie.Value)
	}

	// The cookie opens the console, now holding the loaded collections.
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Кофе")
	assert.Contains(t, body, "Капучино")
	assert.Contains(t, body, "Иван")
}

func TestAdminLoginFailureStaysOnForm(t *testing.T) {
	upstream := &adminUpstream{}
	r := newSiteRouter(t, upstream.handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Неверный логин или пароль")
	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, middlewares.SessionCookieName, c.Name)
	}
}

func TestForgedCookieWithoutServerSessionIsRejected(t *testing.T) {
	upstream := &adminUpstream{}
	r := newSiteRouter(t, upstream.handler())

	// A well-signed browser cookie alone is not enough: the server side
	// holds no API token, so the console bounces back to login.
	value, err := utils.GenerateSessionCookie([]byte(testCookieSecret))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middlewares.SessionCookieName, Value: value})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestDeleteWithoutConfirmationNeverReachesAPI(t *testing.T) {
	upstream := &adminUpstream{}
	r := newSiteRouter(t, upstream.handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login", url.Values{
		"username": {"admin"},
		"password": {"secret"},
	}))
	cookie := w.Result().Cookies()[0]

	w = httptest.NewRecorder()
	req := postForm("/admin/categories/1/delete", url.Values{})
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/admin?error=")
	assert.False(t, upstream.saw("DELETE", "/admin/categories/1"))

	// With the confirmation flag the delete goes through.
	w = httptest.NewRecorder()
	req = postForm("/admin/categories/1/delete", url.Values{"confirm": {"yes"}})
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.True(t, upstream.saw("DELETE", "/admin/categories/1"))
}

func TestLogoutClearsCookieAndSession(t *testing.T) {
	upstream := &adminUpstream{}
	r := newSiteRouter(t, upstream.handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm("/admin/login", url.Values{
		"username": {"admin"},
		"password": {"secret"},
	}))
	cookie := w.Result().Cookies()[0]

	w = httptest.NewRecorder()
	req := postForm("/admin/logout", url.Values{})
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	// The old cookie no longer opens the console.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}
