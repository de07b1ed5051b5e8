package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userboard/userboard/internal/handler/dto"
	"github.com/userboard/userboard/internal/service"
	"github.com/userboard/userboard/internal/testutil"
)

func newUserHandler(st *testutil.FakeUserStore) *UserHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserHandler(service.NewUserService(st, nil), logger)
}

func TestUserHandler_Create_Success(t *testing.T) {
	h := newUserHandler(testutil.NewFakeUserStore())

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"email":" A@B.com ","name":" Alice "}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var user dto.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	require.NotNil(t, user.Name)
	assert.Equal(t, "Alice", *user.Name)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUserHandler_Create_NameAbsentWhenWhitespace(t *testing.T) {
	h := newUserHandler(testutil.NewFakeUserStore())

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"email":"x@y.com","name":"   "}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"name"`)
}

func TestUserHandler_Create_EmailRequired(t *testing.T) {
	h := newUserHandler(testutil.NewFakeUserStore())

	for _, body := range []string{
		`{"name":"Bob"}`,
		`{"email":""}`,
		`{"email":"   "}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Email is required", resp.Error)
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	st := testutil.NewFakeUserStore()
	h := newUserHandler(st)

	first := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"email":"x@y.com"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, first)
	require.Equal(t, http.StatusCreated, rec.Code)

	second := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"email":"X@Y.com"}`))
	rec = httptest.NewRecorder()
	h.Create(rec, second)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User with this email already exists", resp.Error)
	assert.Equal(t, 1, st.Len())
}

func TestUserHandler_Create_InvalidJSON(t *testing.T) {
	h := newUserHandler(testutil.NewFakeUserStore())

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Invalid request body", resp.Error)
}

func TestUserHandler_List_Empty(t *testing.T) {
	h := newUserHandler(testutil.NewFakeUserStore())

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUserHandler_List_StoreFailure(t *testing.T) {
	st := testutil.NewFakeUserStore()
	st.FailWith = errors.New("connection reset by peer")
	h := newUserHandler(st)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "connection reset by peer")
}
