package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodgarden/internal/service"
)

func TestUserIDMiddleware(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		parseErr error
		want     int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", parseErr: errors.New("expired"), want: http.StatusUnauthorized},
		{name: "accepted token", header: "Bearer good", want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseID: 7, parseErr: tc.parseErr}
			s := &service.Service{Authorization: auth, FlowerView: &mockFlowerView{}}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/flower/state", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestUserIDMiddleware_ForwardsToken(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	s := &service.Service{Authorization: auth, FlowerView: &mockFlowerView{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flower/state", nil)
	for k, vv := range authHeader("tok-abc") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastParseToken != "tok-abc" {
		t.Fatalf("parsed token %q, want tok-abc", auth.lastParseToken)
	}
}
