package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

const testReqID = "aabbccddeeff00112233445566778899"

func newServer(t *testing.T) (*echo.Echo, *httptest.Server, func() int) {
	t.Helper()
	_, rdb := newMiniRedis(t)

	calls := 0
	e := echo.New()
	e.Use(Idempotency(rdb, time.Minute))
	e.POST("/api/loans", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]any{"call": calls})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return e, srv, func() int { return calls }
}

func post(t *testing.T, url, body string, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	return resp
}

func validHeaders() map[string]string {
	return map[string]string{
		"X-Request-Id": testReqID,
		"X-Request-At": strconv.FormatInt(time.Now().Unix(), 10),
		"X-User-Id":    "owner-1",
	}
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(b)
}

func TestIdempotency_ReplaysFinalResponse(t *testing.T) {
	_, srv, calls := newServer(t)

	first := post(t, srv.URL+"/api/loans", `{"a":1}`, validHeaders())
	if first.StatusCode != http.StatusCreated {
		t.Fatalf("first status = %d", first.StatusCode)
	}
	firstBody := readAll(t, first)

	second := post(t, srv.URL+"/api/loans", `{"a":1}`, validHeaders())
	if second.StatusCode != http.StatusCreated {
		t.Fatalf("replay status = %d", second.StatusCode)
	}
	if got := readAll(t, second); got != firstBody {
		t.Fatalf("replay body %q != first body %q", got, firstBody)
	}
	if calls() != 1 {
		t.Fatalf("handler ran %d times, want 1", calls())
	}
}

func TestIdempotency_ConflictOnDifferentBody(t *testing.T) {
	_, srv, _ := newServer(t)

	resp := post(t, srv.URL+"/api/loans", `{"a":1}`, validHeaders())
	readAll(t, resp)

	conflict := post(t, srv.URL+"/api/loans", `{"a":2}`, validHeaders())
	if conflict.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", conflict.StatusCode)
	}
	readAll(t, conflict)
}

func TestIdempotency_HeaderValidation(t *testing.T) {
	_, srv, calls := newServer(t)

	h := validHeaders()
	delete(h, "X-Request-Id")
	resp := post(t, srv.URL+"/api/loans", `{}`, h)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing id: status = %d", resp.StatusCode)
	}
	readAll(t, resp)

	h = validHeaders()
	h["X-Request-At"] = strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
	resp = post(t, srv.URL+"/api/loans", `{}`, h)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("skewed clock: status = %d", resp.StatusCode)
	}
	readAll(t, resp)

	h = validHeaders()
	delete(h, "X-User-Id")
	resp = post(t, srv.URL+"/api/loans", `{}`, h)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing user: status = %d", resp.StatusCode)
	}
	readAll(t, resp)

	if calls() != 0 {
		t.Fatalf("handler ran %d times, want 0", calls())
	}
}

func TestIdempotency_SkipsReads(t *testing.T) {
	_, rdb := newMiniRedis(t)
	e := echo.New()
	e.Use(Idempotency(rdb, time.Minute))
	e.GET("/api/loans", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "yes"})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	// No idempotency headers at all; GET must pass through.
	resp, err := http.Get(srv.URL + "/api/loans")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	readAll(t, resp)
}
