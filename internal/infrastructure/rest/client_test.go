package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
)

func decodeBody(r *http.Request, out any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func newTestClient(t *testing.T, handler http.Handler, blob string, onAuthFailure func()) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{
		BaseURL:       srv.URL,
		Token:         func(context.Context) string { return blob },
		OnAuthFailure: onAuthFailure,
		Log:           zerolog.Nop(),
	})
}

func TestClient_AmbientHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotRequestID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	})

	client := newTestClient(t, handler, "blob-abc", nil)
	var out struct{}
	if err := client.doJSON(context.Background(), http.MethodGet, "/x", "/x", nil, nil, &out); err != nil {
		t.Fatalf("doJSON: %v", err)
	}

	if gotAuth != "Bearer blob-abc" {
		t.Fatalf("Authorization = %q, want bearer blob", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q", gotAccept)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID missing")
	}
}

func TestClient_NoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	client := newTestClient(t, handler, "", nil)
	var out struct{}
	if err := client.doJSON(context.Background(), http.MethodGet, "/x", "/x", nil, nil, &out); err != nil {
		t.Fatalf("doJSON: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization header must be absent when logged out, got %q", gotAuth)
	}
}

func TestClient_AuthFailureInterceptor(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"session expired"}`, status)
		})

		teardowns := 0
		client := newTestClient(t, handler, "stale-blob", func() { teardowns++ })

		err := client.doJSON(context.Background(), http.MethodGet, "/questions", "/questions", nil, nil, nil)
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("status %d: expected ErrUnauthenticated, got %v", status, err)
		}
		if teardowns != 1 {
			t.Fatalf("status %d: interceptor fired %d times, want 1", status, teardowns)
		}
	}
}

func TestClient_LoginFailuresBypassInterceptor(t *testing.T) {
	cases := []struct {
		status  int
		wantErr error
	}{
		{http.StatusUnauthorized, domain.ErrInvalidCredentials},
		{http.StatusForbidden, domain.ErrAccountBanned},
	}
	for _, tc := range cases {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"no"}`, tc.status)
		})

		teardowns := 0
		client := newTestClient(t, handler, "", func() { teardowns++ })
		gw := NewAuthGateway(client)

		_, err := gw.Login(context.Background(), "a@example.com", "pw")
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("status %d: error = %v, want %v", tc.status, err, tc.wantErr)
		}
		if teardowns != 0 {
			t.Fatalf("status %d: a failed login must never tear the session down", tc.status)
		}
	}
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status  int
		wantErr error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrUserExists},
		{http.StatusRequestEntityTooLarge, domain.ErrUploadTooLarge},
		{http.StatusInternalServerError, domain.ErrNetwork},
	}
	for _, tc := range cases {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"detail"}`, tc.status)
		})
		client := newTestClient(t, handler, "", nil)

		err := client.doJSON(context.Background(), http.MethodGet, "/x", "/x", nil, nil, nil)
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("status %d: error = %v, want %v", tc.status, err, tc.wantErr)
		}
	}
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient(Options{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Log:     zerolog.Nop(),
	})
	err := client.doJSON(context.Background(), http.MethodGet, "/x", "/x", nil, nil, nil)
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestVoteGateway_ValueTravelsAsQueryParam(t *testing.T) {
	var gotPath, gotValue string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotValue = r.URL.Query().Get("value")
		w.Write([]byte(`{"voter":{"id":5},"value":-1}`))
	})

	client := newTestClient(t, handler, "", nil)
	gw := NewVoteGateway(client)

	v, err := gw.VoteQuestion(context.Background(), 10, 5, domain.Downvote)
	if err != nil {
		t.Fatalf("VoteQuestion: %v", err)
	}
	if gotPath != "/votes/question/10/user/5" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotValue != "-1" {
		t.Fatalf("value param = %q, want -1", gotValue)
	}
	if v.Voter.ID != 5 || v.Value != domain.Downvote {
		t.Fatalf("vote = %+v", v)
	}
}

func TestQuestionGateway_AcceptAnswer(t *testing.T) {
	var gotMethod, gotPath, gotUserID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUserID = r.URL.Query().Get("userId")
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, handler, "", nil)
	gw := NewQuestionGateway(client)

	if err := gw.AcceptAnswer(context.Background(), 10, 20, 1); err != nil {
		t.Fatalf("AcceptAnswer: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/questions/10/accept/20" {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
	if gotUserID != "1" {
		t.Fatalf("userId param = %q, want 1", gotUserID)
	}
}

func TestAuthGateway_Login(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := decodeBody(r, &body); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if body.Email != "alice@example.com" || body.Password != "pw" {
			t.Errorf("login body = %+v", body)
		}
		w.Write([]byte(`{"id":1,"username":"alice","email":"alice@example.com","role":"USER","score":3}`))
	})

	client := newTestClient(t, handler, "", nil)
	gw := NewAuthGateway(client)

	u, err := gw.Login(context.Background(), "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.ID != 1 || u.Username != "alice" || u.Score != 3 {
		t.Fatalf("user = %+v", u)
	}
}

func TestUserGateway_NotFoundNarrowed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"User with id 9 not found"}`, http.StatusNotFound)
	})

	client := newTestClient(t, handler, "", nil)
	gw := NewUserGateway(client)

	_, err := gw.GetByID(context.Background(), 9)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestQuestionGateway_Create(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var input ports.QuestionInput
		if err := decodeBody(r, &input); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if input.Title != "A title here" {
			t.Errorf("title = %q", input.Title)
		}
		w.Write([]byte(`{"id":7,"title":"A title here","author":{"id":3}}`))
	})

	client := newTestClient(t, handler, "", nil)
	gw := NewQuestionGateway(client)

	q, err := gw.Create(context.Background(), 3, ports.QuestionInput{Title: "A title here", Text: "Long enough text."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gotPath != "/questions/user/3" {
		t.Fatalf("path = %q", gotPath)
	}
	if q.ID != 7 || q.Author.ID != 3 {
		t.Fatalf("question = %+v", q)
	}
}
