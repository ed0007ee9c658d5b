// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memberdash/memberdash/internal/auth"
	"github.com/memberdash/memberdash/internal/httpapi"
	"github.com/memberdash/memberdash/internal/member"
	"github.com/memberdash/memberdash/internal/member/mocks"
	"github.com/memberdash/memberdash/internal/observability"
)

var (
	testSecret = []byte("test-secret")
	t0         = time.Unix(1_700_000_000, 0).UTC()
)

// fakeAuth is an AuthService driven by per-test functions.
type fakeAuth struct {
	register func(email, password string) (*auth.Identity, error)
	login    func(email, password string) (*auth.Session, error)
}

func (f *fakeAuth) Register(_ context.Context, email, password string) (*auth.Identity, error) {
	return f.register(email, password)
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*auth.Session, error) {
	return f.login(email, password)
}

type fixture struct {
	server  *httpapi.Server
	auth    *fakeAuth
	repo    *mocks.MockRepository
	issuer  *auth.TokenIssuer
	metrics *observability.Metrics
	logs    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	issuer, err := auth.NewTokenIssuer(testSecret)
	require.NoError(t, err)
	verifier, err := auth.NewTokenVerifier(testSecret)
	require.NoError(t, err)

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	gate, err := auth.NewGate(verifier,
		auth.WithGateClock(func() time.Time { return t0.Add(10 * time.Second) }),
		auth.WithGateLogger(logger),
		auth.WithGateObserver(metrics.RecordGateRejection),
	)
	require.NoError(t, err)

	repo := mocks.NewMockRepository(t)
	members, err := member.NewService(repo, logger)
	require.NoError(t, err)

	fa := &fakeAuth{}
	server, err := httpapi.NewServer(httpapi.Config{}, httpapi.Deps{
		Auth:    fa,
		Members: members,
		Gate:    gate,
		Metrics: metrics,
		Logger:  logger,
	})
	require.NoError(t, err)

	return &fixture{server: server, auth: fa, repo: repo, issuer: issuer, metrics: metrics, logs: logs}
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	token, err := f.issuer.Issue("admin@example.com", t0, time.Minute)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(t *testing.T, method, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := f.server.App().Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp, decoded
}

func validMemberJSON() string {
	return `{"nik":3201,"nama":"Siti","umur":30,"tanggal_lahir":"1994-05-17",` +
		`"tempat_lahir":"Bandung","status":"pekerja","gender":"perempuan"}`
}

func TestNewServer_RequiresDependencies(t *testing.T) {
	_, err := httpapi.NewServer(httpapi.Config{}, httpapi.Deps{})
	require.Error(t, err)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     error
		wantStatus int
		wantMsg    string
	}{
		{"created", `{"email":"a@b.co","password":"pw1"}`, nil, http.StatusCreated, httpapi.MessageRegistered},
		{"invalid email", `{"email":"nope","password":"pw1"}`, oops.Code("AUTH_INVALID_EMAIL").Wrap(auth.ErrInvalidEmail), http.StatusBadRequest, "email is invalid"},
		{"duplicate", `{"email":"a@b.co","password":"pw1"}`, oops.Code("AUTH_EMAIL_TAKEN").Wrap(auth.ErrEmailTaken), http.StatusConflict, "email already registered"},
		{"zero rows", `{"email":"a@b.co","password":"pw1"}`, oops.Code("AUTH_NOT_ACCEPTED").Wrap(auth.ErrNotAccepted), http.StatusNotAcceptable, "request not accepted"},
		{"store failure", `{"email":"a@b.co","password":"pw1"}`, oops.Code("AUTH_REGISTER_FAILED").Wrap(errors.New("connection reset by peer")), http.StatusInternalServerError, "internal server error"},
		{"malformed body", `{"email":`, nil, http.StatusBadRequest, "malformed request"},
		{"missing password", `{"email":"a@b.co"}`, nil, http.StatusBadRequest, "malformed request"},
		{"null password", `{"email":"a@b.co","password":null}`, nil, http.StatusBadRequest, "malformed request"},
		{"missing email", `{"password":"pw1"}`, nil, http.StatusBadRequest, "malformed request"},
		{"null email", `{"email":null,"password":"pw1"}`, nil, http.StatusBadRequest, "malformed request"},
		{"empty password accepted", `{"email":"a@b.co","password":""}`, nil, http.StatusCreated, httpapi.MessageRegistered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.auth.register = func(email, _ string) (*auth.Identity, error) {
				if tt.wantMsg == "malformed request" {
					t.Errorf("register reached the service for %s", tt.body)
				}
				if tt.result != nil {
					return nil, tt.result
				}
				parsed, err := auth.NewEmail(email)
				require.NoError(t, err)
				return &auth.Identity{Email: parsed}, nil
			}

			resp, body := f.do(t, http.MethodPost, "/register", tt.body, "")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, body["message"])
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "success", body["status"])
				content := body["content"].(map[string]any)
				assert.Equal(t, "a@b.co", content["email"])
				assert.Equal(t, "", content["token"])
				assert.EqualValues(t, 0, content["expired"])
			} else {
				assert.Equal(t, "error", body["status"])
			}
		})
	}

	t.Run("internal detail is logged not returned", func(t *testing.T) {
		f := newFixture(t)
		f.auth.register = func(string, string) (*auth.Identity, error) {
			return nil, oops.Code("AUTH_REGISTER_FAILED").Wrap(errors.New("connection reset by peer"))
		}

		resp, body := f.do(t, http.MethodPost, "/register", `{"email":"a@b.co","password":"pw1"}`, "")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, body["message"], "connection reset")
		assert.Contains(t, f.logs.String(), "connection reset by peer")
		assert.Contains(t, f.logs.String(), "AUTH_REGISTER_FAILED")
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues token with ttl in seconds", func(t *testing.T) {
		f := newFixture(t)
		f.auth.login = func(email, password string) (*auth.Session, error) {
			assert.Equal(t, "a@b.co", email)
			assert.Equal(t, "pw1", password)
			parsed, err := auth.NewEmail(email)
			require.NoError(t, err)
			return &auth.Session{Email: parsed, Token: "tok", TTL: time.Minute, ExpiresAt: t0.Add(time.Minute)}, nil
		}

		resp, body := f.do(t, http.MethodPost, "/login", `{"email":"a@b.co","password":"pw1"}`, "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, httpapi.MessageLoggedIn, body["message"])
		content := body["content"].(map[string]any)
		assert.Equal(t, "tok", content["token"])
		assert.EqualValues(t, 60, content["expired"])
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.AuthOperationsTotal.WithLabelValues("login", "success")), 0)
	})

	t.Run("absent or null fields are malformed", func(t *testing.T) {
		for _, body := range []string{
			`{"email":"a@b.co"}`,
			`{"email":"a@b.co","password":null}`,
			`{"password":"pw1"}`,
			`{"email":null,"password":"pw1"}`,
			`{}`,
		} {
			f := newFixture(t)
			f.auth.login = func(string, string) (*auth.Session, error) {
				t.Errorf("login reached the service for %s", body)
				return nil, errors.New("unexpected login")
			}

			resp, decoded := f.do(t, http.MethodPost, "/login", body, "")

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
			assert.Equal(t, "malformed request", decoded["message"], body)
			assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.AuthOperationsTotal.WithLabelValues("login", "failure")), 0)
		}
	})

	t.Run("empty password reaches the service", func(t *testing.T) {
		f := newFixture(t)
		var got *string
		f.auth.login = func(_, password string) (*auth.Session, error) {
			got = &password
			return nil, oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(auth.ErrBadCredentials)
		}

		resp, _ := f.do(t, http.MethodPost, "/login", `{"email":"a@b.co","password":""}`, "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, got)
		assert.Empty(t, *got)
	})

	failures := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown email", oops.Code("AUTH_UNKNOWN_EMAIL").Wrap(auth.ErrNotFound), http.StatusNotFound},
		{"wrong password", oops.Code("AUTH_INVALID_CREDENTIALS").Wrap(auth.ErrBadCredentials), http.StatusBadRequest},
		{"invalid email", oops.Code("AUTH_INVALID_EMAIL").Wrap(auth.ErrInvalidEmail), http.StatusBadRequest},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.auth.login = func(string, string) (*auth.Session, error) { return nil, tt.err }

			resp, body := f.do(t, http.MethodPost, "/login", `{"email":"a@b.co","password":"pw1"}`, "")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, "error", body["status"])
			assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.AuthOperationsTotal.WithLabelValues("login", "failure")), 0)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		f := newFixture(t)
		resp, body := f.do(t, http.MethodGet, "/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, auth.ReasonMissingHeader, body["message"])
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.GateRejectionsTotal.WithLabelValues(auth.ReasonMissingHeader, "")), 0)
	})

	t.Run("bad scheme", func(t *testing.T) {
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Basic YTpi")

		resp, err := f.server.App().Test(req, -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("header that is not visible ascii", func(t *testing.T) {
		for _, value := range []string{"Bearer tökén", "Bearer abc\x7fdef", "Bearer abc\x01def"} {
			f := newFixture(t)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set(fiber.HeaderAuthorization, value)

			resp, err := f.server.App().Test(req, -1)
			require.NoError(t, err)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%q", value)
			assert.Contains(t, string(raw), auth.ReasonMalformedHeader, "%q", value)
			assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.GateRejectionsTotal.WithLabelValues(auth.ReasonMalformedHeader, "")), 0)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		f := newFixture(t)
		token, err := f.issuer.Issue("admin@example.com", t0.Add(-time.Hour), time.Minute)
		require.NoError(t, err)

		resp, body := f.do(t, http.MethodGet, "/me", "", token)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, auth.ReasonInvalidToken, body["message"])
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.GateRejectionsTotal.WithLabelValues(auth.ReasonInvalidToken, auth.TokenErrorExpired)), 0)
	})

	t.Run("valid token forwards identity", func(t *testing.T) {
		f := newFixture(t)
		resp, body := f.do(t, http.MethodGet, "/me", "", f.token(t))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "admin@example.com", body["email"])
		assert.Equal(t, t0.Add(time.Minute).Format(time.RFC3339), body["expires_at"])
	})

	t.Run("public routes need no token", func(t *testing.T) {
		f := newFixture(t)
		f.auth.login = func(string, string) (*auth.Session, error) {
			return nil, oops.Code("AUTH_UNKNOWN_EMAIL").Wrap(auth.ErrNotFound)
		}
		resp, _ := f.do(t, http.MethodPost, "/login", `{"email":"a@b.co","password":"pw1"}`, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestMembers_List(t *testing.T) {
	f := newFixture(t)
	f.repo.On("List", mock.Anything, 10, 0).Return([]member.Member{{ID: 1, NIK: 3201, Name: "Siti"}}, nil).Once()
	f.repo.On("List", mock.Anything, 5, 20).Return([]member.Member{}, nil).Once()

	resp, err := f.server.App().Test(authed(httptest.NewRequest(http.MethodGet, "/data", nil), f.token(t)), -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var members []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&members))
	require.Len(t, members, 1)
	assert.Equal(t, "Siti", members[0]["nama"])

	resp2, err := f.server.App().Test(authed(httptest.NewRequest(http.MethodGet, "/data?limit=5&offset=20", nil), f.token(t)), -1)
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	raw, err := io.ReadAll(resp2.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	resp3, body := f.do(t, http.MethodGet, "/data?limit=ten", "", f.token(t))
	assert.Equal(t, http.StatusBadRequest, resp3.StatusCode)
	assert.Equal(t, "malformed request", body["message"])
}

func authed(req *http.Request, token string) *http.Request {
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}

func TestMembers_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Get", mock.Anything, int32(7)).Return(&member.Member{ID: 7, Name: "Budi", BirthDate: member.NewDate(1990, time.January, 2)}, nil)

		resp, body := f.do(t, http.MethodGet, "/data/7", "", f.token(t))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Budi", body["nama"])
		assert.Equal(t, "1990-01-02", body["tanggal_lahir"])
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Get", mock.Anything, int32(8)).Return(nil, oops.Code("MEMBER_NOT_FOUND").Wrap(member.ErrNotFound))

		resp, body := f.do(t, http.MethodGet, "/data/8", "", f.token(t))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "member not found", body["message"])
	})

	for _, id := range []string{"abc", "99999999999", "0", "-3"} {
		t.Run("bad id "+id, func(t *testing.T) {
			f := newFixture(t)
			resp, _ := f.do(t, http.MethodGet, "/data/"+id, "", f.token(t))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	t.Run("requires token", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.do(t, http.MethodGet, "/data/7", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestMembers_Create(t *testing.T) {
	t.Run("created with actor", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Insert", mock.Anything, mock.MatchedBy(func(m member.Member) bool {
			return m.NIK == 3201 && m.Status == member.StatusWorker && m.Gender == member.GenderFemale
		}), "admin@example.com").Return(&member.Member{ID: 1}, nil)

		resp, body := f.do(t, http.MethodPost, "/data", validMemberJSON(), f.token(t))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, httpapi.MessageMemberCreated, body["message"])
	})

	t.Run("invalid fields", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(validMemberJSON(), `"pekerja"`, `"astronot"`, 1)

		resp, decoded := f.do(t, http.MethodPost, "/data", body, f.token(t))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		fields := decoded["fields"].(map[string]any)
		assert.Contains(t, fields, "status")
	})

	t.Run("bad date", func(t *testing.T) {
		f := newFixture(t)
		body := strings.Replace(validMemberJSON(), `"1994-05-17"`, `"17/05/1994"`, 1)

		resp, _ := f.do(t, http.MethodPost, "/data", body, f.token(t))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("insert not accepted", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Insert", mock.Anything, mock.Anything, "admin@example.com").
			Return(nil, oops.Code("MEMBER_NOT_ACCEPTED").Wrap(member.ErrNotAccepted))

		resp, _ := f.do(t, http.MethodPost, "/data", validMemberJSON(), f.token(t))

		assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
	})
}

func TestMembers_UpdateAndDelete(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Update", mock.Anything, int32(3), mock.Anything).Return(int64(1), nil)

		resp, body := f.do(t, http.MethodPut, "/data/3", validMemberJSON(), f.token(t))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, httpapi.MessageMemberUpdated, body["message"])
	})

	t.Run("update missing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Update", mock.Anything, int32(3), mock.Anything).Return(int64(0), nil)

		resp, _ := f.do(t, http.MethodPut, "/data/3", validMemberJSON(), f.token(t))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Delete", mock.Anything, int32(4)).Return(int64(1), nil)

		resp, body := f.do(t, http.MethodDelete, "/data/4", "", f.token(t))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, httpapi.MessageMemberDeleted, body["message"])
	})

	t.Run("delete missing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("Delete", mock.Anything, int32(4)).Return(int64(0), nil)

		resp, _ := f.do(t, http.MethodDelete, "/data/4", "", f.token(t))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("assigns request id", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.do(t, http.MethodGet, "/me", "", f.token(t))

		id := resp.Header.Get(httpapi.HeaderRequestID)
		_, err := ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Contains(t, f.logs.String(), id)
	})

	t.Run("reuses valid incoming request id", func(t *testing.T) {
		f := newFixture(t)
		id := ulid.Make().String()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(httpapi.HeaderRequestID, id)

		resp, err := f.server.App().Test(req, -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, id, resp.Header.Get(httpapi.HeaderRequestID))
	})

	t.Run("recovers from panics", func(t *testing.T) {
		f := newFixture(t)
		f.server.App().Get("/boom", func(*fiber.Ctx) error { panic("kaboom") })

		resp, body := f.do(t, http.MethodGet, "/boom", "", "")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "internal server error", body["message"])
		assert.Contains(t, f.logs.String(), "panic recovered")
	})

	t.Run("records request metrics", func(t *testing.T) {
		f := newFixture(t)
		f.do(t, http.MethodGet, "/me", "", f.token(t))

		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/me", "200")), 0)
	})

	t.Run("unknown route", func(t *testing.T) {
		f := newFixture(t)
		resp, body := f.do(t, http.MethodGet, "/nope", "", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "error", body["status"])
	})
}

func TestServer_StartStop(t *testing.T) {
	f := newFixture(t)
	server, err := httpapi.NewServer(httpapi.Config{Addr: "127.0.0.1:0"}, httpapi.Deps{
		Auth:    f.auth,
		Members: &member.Service{},
		Gate:    &auth.Gate{},
	})
	require.NoError(t, err)

	errCh, err := server.Start()
	require.NoError(t, err)
	assert.NotEmpty(t, server.Addr())

	_, err = server.Start()
	require.Error(t, err)

	resp, err := http.Get("http://" + server.Addr() + "/nope")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Stop(ctx))
	require.NoError(t, server.Stop(ctx))

	select {
	case serveErr, ok := <-errCh:
		if ok {
			assert.NoError(t, serveErr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve loop did not exit")
	}
}
