package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prashanthm/portfolio/internal/analytics"
)

func login(t *testing.T, r http.Handler) *http.Cookie {
	t.Helper()
	w := do(r, http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"secret"}})
	if w.Code != http.StatusFound {
		t.Fatalf("login: status %d", w.Code)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_token" {
			return c
		}
	}
	t.Fatalf("login set no admin_token cookie")
	return nil
}

func doWithCookie(r http.Handler, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLogin_RejectsBadCredentials(t *testing.T) {
	_, r := newTestApp(t, true)
	w := do(r, http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials") {
		t.Fatalf("login page missing error")
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	_, r := newTestApp(t, true)
	w := do(r, http.MethodGet, "/admin/dashboard", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/admin/login" {
		t.Fatalf("expected redirect to login, got %d %q", w.Code, w.Header().Get("Location"))
	}

	forged := &http.Cookie{Name: "admin_token", Value: "forged"}
	w = doWithCookie(r, http.MethodGet, "/admin/api/stats", forged)
	if w.Code != http.StatusFound {
		t.Fatalf("forged token accepted: %d", w.Code)
	}
}

func TestAdminDashboard_CountsVisitsAndModalOpens(t *testing.T) {
	_, r := newTestApp(t, true)

	id, _ := loadPage(t, r)
	do(r, http.MethodPost, "/ui/"+id+"/projects/2", nil)
	do(r, http.MethodPost, "/ui/"+id+"/modal/dismiss", nil)
	do(r, http.MethodPost, "/ui/"+id+"/projects/2", nil)

	// Do Not Track requests are not recorded
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("DNT", "1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	cookie := login(t, r)
	w := doWithCookie(r, http.MethodGet, "/admin/api/stats", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status %d", w.Code)
	}
	var stats analytics.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalVisitors != 1 {
		t.Fatalf("expected 1 tracked visit, got %d", stats.TotalVisitors)
	}
	if stats.TotalModalOpens != 2 || len(stats.TopProjects) != 1 || stats.TopProjects[0].Title != "Blog Platform" {
		t.Fatalf("unexpected project stats %+v", stats.TopProjects)
	}

	w = doWithCookie(r, http.MethodGet, "/admin/dashboard", cookie)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Blog Platform") {
		t.Fatalf("dashboard: status %d", w.Code)
	}

	w = doWithCookie(r, http.MethodGet, "/admin/visitors", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("visitors: status %d", w.Code)
	}

	w = doWithCookie(r, http.MethodGet, "/admin/export/stats", cookie)
	if !strings.Contains(w.Header().Get("Content-Disposition"), "admin-stats.json") {
		t.Fatalf("export missing attachment header")
	}
}

func TestAdminRoutes_AbsentWithoutAnalytics(t *testing.T) {
	_, r := newTestApp(t, false)
	if w := do(r, http.MethodGet, "/admin/login", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without analytics, got %d", w.Code)
	}
	w := do(r, http.MethodGet, "/privacy", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "does not track") {
		t.Fatalf("privacy page: status %d", w.Code)
	}
}

func TestNewAdminToken(t *testing.T) {
	a, err := newAdminToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	b, err := newAdminToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if len(a) != 64 || a == b {
		t.Fatalf("tokens should be 64 hex chars and distinct: %q %q", a, b)
	}
}

func TestAdminLogout_ClearsSession(t *testing.T) {
	_, r := newTestApp(t, true)
	cookie := login(t, r)
	w := doWithCookie(r, http.MethodGet, "/admin/logout", cookie)
	if w.Code != http.StatusFound {
		t.Fatalf("logout: status %d", w.Code)
	}
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("logout did not clear the admin cookie")
	}
}
