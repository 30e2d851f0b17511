package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hli-landing/pkg/clients/relay"
	"hli-landing/pkg/models"
	"hli-landing/pkg/services"
	"hli-landing/pkg/submission"
	"hli-landing/pkg/web"
)

const concierge = "concierge@huntluxuryinvestments.com"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type countingDestination struct {
	mode    submission.Mode
	err     error
	receipt submission.Receipt

	mu    sync.Mutex
	calls int
}

func (d *countingDestination) Mode() submission.Mode { return d.mode }

func (d *countingDestination) Deliver(context.Context, models.Lead) (submission.Receipt, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return d.receipt, d.err
}

func newRouter(t *testing.T, dest submission.Destination, linked bool) *gin.Engine {
	t.Helper()
	renderer, err := web.NewRenderer(web.Options{
		Content:        web.DefaultPageContent(concierge),
		Stylesheet:     web.Stylesheet(),
		LinkStylesheet: linked,
		FormAction:     "/contact",
	})
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	svc := services.NewLandingSubmissionService(dest, "HLI Landing", concierge, zap.NewNop())
	h := NewHandlers(svc, renderer, zap.NewNop())
	h.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	r := gin.New()
	RegisterRoutes(r, h, RouteOptions{LinkStylesheet: linked})
	return r
}

func postForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func janeDoe() url.Values {
	return url.Values{
		models.FieldName:     {"Jane Doe"},
		models.FieldEmail:    {"jane@example.com"},
		models.FieldPhone:    {"(202) 555-0123"},
		models.FieldInterest: {"Georgetown condo"},
		models.FieldMessage:  {"Spring timeline"},
	}
}

func TestHandleLandingPage(t *testing.T) {
	t.Parallel()

	r := newRouter(t, &countingDestination{mode: submission.ModeMailto}, false)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-testid="lead-form"`) {
		t.Fatalf("lead form missing from page")
	}
	if !strings.Contains(body, "© 2026 HLI") {
		t.Fatalf("footer year not taken from clock")
	}
}

func TestContactSubmissionRequiresNameAndEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
	}{
		{"missing email", url.Values{models.FieldName: {"Jane Doe"}}},
		{"missing name", url.Values{models.FieldEmail: {"jane@example.com"}}},
		{"blank name", url.Values{models.FieldName: {"   "}, models.FieldEmail: {"jane@example.com"}}},
		{"empty", url.Values{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dest := &countingDestination{mode: submission.ModeWebhook}
			w := postForm(newRouter(t, dest, false), tt.values)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if dest.calls != 0 {
				t.Fatalf("destination called %d times, want 0", dest.calls)
			}
			if v := tt.values.Get(models.FieldName); strings.TrimSpace(v) != "" && !strings.Contains(w.Body.String(), `value="`+v+`"`) {
				t.Fatalf("name value not preserved")
			}
		})
	}
}

func TestContactSubmissionWebhookSuccess(t *testing.T) {
	t.Parallel()

	var (
		gotType string
		gotBody map[string]string
	)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	dest := submission.NewWebhook(upstream.URL, relay.NewClient(upstream.URL, 2*time.Second, zap.NewNop()))
	w := postForm(newRouter(t, dest, false), janeDoe())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-testid="thank-you"`) {
		t.Fatalf("thank-you panel missing")
	}
	if strings.Contains(body, `data-testid="lead-form"`) {
		t.Fatalf("lead form still rendered after success")
	}
	if !strings.HasPrefix(gotType, "application/json") {
		t.Fatalf("upstream content type = %q", gotType)
	}
	for field, want := range map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "(202) 555-0123",
		"interest": "Georgetown condo",
		"message":  "Spring timeline",
		"source":   "HLI Landing",
	} {
		if gotBody[field] != want {
			t.Fatalf("upstream %s = %q, want %q", field, gotBody[field], want)
		}
	}
	if _, err := time.Parse(models.TimestampLayout, gotBody["ts"]); err != nil {
		t.Fatalf("upstream ts = %q: %v", gotBody["ts"], err)
	}
}

func TestContactSubmissionWebhookFailureKeepsValues(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	dest := submission.NewWebhook(upstream.URL, relay.NewClient(upstream.URL, 2*time.Second, zap.NewNop()))
	w := postForm(newRouter(t, dest, false), janeDoe())

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "We couldn’t submit the form. Please try again or email "+concierge+".") {
		t.Fatalf("failure message missing")
	}
	if strings.Contains(body, `data-testid="thank-you"`) {
		t.Fatalf("thank-you panel shown on failure")
	}
	for _, v := range []string{"Jane Doe", "jane@example.com", "Georgetown condo"} {
		if !strings.Contains(body, `value="`+v+`"`) {
			t.Fatalf("value %q not preserved", v)
		}
	}
	if strings.Contains(body, `class="btn" disabled`) {
		t.Fatalf("submit control still disabled after failure")
	}
}

func TestSubmitAnotherReturnsToEmptyForm(t *testing.T) {
	t.Parallel()

	r := newRouter(t, &countingDestination{mode: submission.ModeWebhook}, false)
	w := postForm(r, janeDoe())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `href="/#contact"`) {
		t.Fatalf("thank-you panel has no link back to the form")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	body := w.Body.String()
	if !strings.Contains(body, `data-testid="lead-form"`) || strings.Contains(body, `data-testid="thank-you"`) {
		t.Fatalf("follow-up page is not the empty form")
	}
	if strings.Contains(body, `value="Jane Doe"`) {
		t.Fatalf("previous lead leaked into the next form")
	}
}

func TestContactSubmissionMailtoNavigates(t *testing.T) {
	t.Parallel()

	w := postForm(newRouter(t, submission.Mailto{Address: concierge}, false), janeDoe())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	want := `content="0;url=mailto:` + concierge + `?subject=New%20Inquiry%20%E2%80%94%20Jane%20Doe&amp;body=`
	if !strings.Contains(w.Body.String(), want) {
		t.Fatalf("mailto refresh missing from page")
	}
}

func TestHandleLeadAPI(t *testing.T) {
	t.Parallel()

	post := func(r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		return w, resp
	}

	t.Run("mailto success", func(t *testing.T) {
		t.Parallel()
		r := newRouter(t, submission.Mailto{Address: concierge}, false)
		w, resp := post(r, `{"name":"Jane Doe","email":"jane@example.com"}`)
		if w.Code != http.StatusOK || resp["status"] != "success" {
			t.Fatalf("response = %d %v", w.Code, resp)
		}
		nav, _ := resp["navigate_to"].(string)
		if !strings.HasPrefix(nav, "mailto:"+concierge+"?subject=") {
			t.Fatalf("navigate_to = %q", nav)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		dest := &countingDestination{mode: submission.ModeFormspree}
		w, resp := post(newRouter(t, dest, false), `{"name":"Jane Doe"}`)
		if w.Code != http.StatusBadRequest || resp["error"] != "Missing required fields" {
			t.Fatalf("response = %d %v", w.Code, resp)
		}
		if dest.calls != 0 {
			t.Fatalf("destination called %d times, want 0", dest.calls)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		w, _ := post(newRouter(t, &countingDestination{mode: submission.ModeFormspree}, false), `{"name":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()
		dest := &countingDestination{
			mode: submission.ModeFormspree,
			err:  errors.Join(submission.ErrSubmissionFailed, errors.New("503 from upstream")),
		}
		w, resp := post(newRouter(t, dest, false), `{"name":"Jane Doe","email":"jane@example.com"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", w.Code)
		}
		if msg, _ := resp["error"].(string); strings.Contains(msg, "503") || !strings.Contains(msg, concierge) {
			t.Fatalf("error = %q", msg)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	r := newRouter(t, &countingDestination{mode: submission.ModeHubSpot}, false)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("health body %q: %v", w.Body.String(), err)
	}
	if resp["status"] != "ok" || resp["mode"] != string(submission.ModeHubSpot) || len(resp) != 2 {
		t.Fatalf("health = %v, want status ok and mode hubspot", resp)
	}
}

func TestStylesheetRouteOnlyWhenLinked(t *testing.T) {
	t.Parallel()

	for _, linked := range []bool{false, true} {
		r := newRouter(t, &countingDestination{mode: submission.ModeMailto}, linked)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, web.StylesheetPath, nil))

		wantCode := http.StatusNotFound
		if linked {
			wantCode = http.StatusOK
		}
		if w.Code != wantCode {
			t.Fatalf("linked=%v: status = %d, want %d", linked, w.Code, wantCode)
		}
		if linked && !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
			t.Fatalf("content type = %q", w.Header().Get("Content-Type"))
		}
	}
}

func TestPageURI(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "http://hli.example.com/contact", nil)
	if got := pageURI(c); got != "http://hli.example.com/" {
		t.Fatalf("pageURI() = %q", got)
	}

	c.Request.Header.Set("X-Forwarded-Proto", "https")
	if got := pageURI(c); got != "https://hli.example.com/" {
		t.Fatalf("pageURI() behind proxy = %q", got)
	}

	c.Request.Header.Set("Referer", "https://huntluxuryinvestments.com/#contact")
	if got := pageURI(c); got != "https://huntluxuryinvestments.com/#contact" {
		t.Fatalf("pageURI() with referer = %q", got)
	}
}
