package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "moodify/internal/delivery/context"
	"moodify/internal/delivery/http/middleware"
	"moodify/internal/delivery/http/validator"
	"moodify/internal/domain/entity"
	domainerrors "moodify/internal/domain/errors"
	mockUsecase "moodify/internal/mocks/usecase"
	"moodify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

// serve runs h through echo's error handler the same way the router would.
func serve(e *echo.Echo, h echo.HandlerFunc, req *http.Request, setup ...func(echo.Context)) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for _, fn := range setup {
		fn(c)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		uc.EXPECT().
			Signup(mock.Anything, &usecase.SignupInput{Username: "ana", Email: "a@x.com", Password: "pw123"}).
			Return(&usecase.SignupOutput{User: &entity.PublicUser{ID: uuid.New(), Email: "a@x.com", Username: "ana"}}, nil)

		rec := serve(newTestEcho(), h.Signup,
			jsonRequest(http.MethodPost, "/api/signup", `{"username":"ana","email":"a@x.com","password":"pw123"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, map[string]any{"message": "User registered successfully"}, decodeBody(t, rec))
	})

	t.Run("missing field never reaches usecase", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		rec := serve(newTestEcho(), h.Signup,
			jsonRequest(http.MethodPost, "/api/signup", `{"username":"ana","email":"a@x.com"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidInput.Message(), decodeBody(t, rec)["message"])
	})

	t.Run("malformed json", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		rec := serve(newTestEcho(), h.Signup, jsonRequest(http.MethodPost, "/api/signup", `{"username":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		uc.EXPECT().Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
			Return(nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email lookup"))

		rec := serve(newTestEcho(), h.Signup,
			jsonRequest(http.MethodPost, "/api/signup", `{"username":"ana","email":"a@x.com","password":"pw123"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"message": "Email already registered"}, decodeBody(t, rec))
	})

	t.Run("store failure hides cause", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		uc.EXPECT().Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
			Return(nil, domainerrors.ErrUserCreationFailed.WithCause(assert.AnError))

		rec := serve(newTestEcho(), h.Signup,
			jsonRequest(http.MethodPost, "/api/signup", `{"username":"ana","email":"a@x.com","password":"pw123"}`))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"message": "Error creating user"}, decodeBody(t, rec))
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)
		userID := uuid.New()

		uc.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "pw123"}).
			Return(&usecase.LoginOutput{
				Token: "signed.token.value",
				User:  &entity.PublicUser{ID: userID, Email: "a@x.com", Username: "ana"},
			}, nil)

		rec := serve(newTestEcho(), h.Login,
			jsonRequest(http.MethodPost, "/api/login", `{"email":"a@x.com","password":"pw123"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Login successful", body["message"])
		assert.Equal(t, "signed.token.value", body["token"])
		assert.Equal(t, map[string]any{"id": userID.String(), "email": "a@x.com", "username": "ana"}, body["user"])
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
			Return(nil, domainerrors.ErrInvalidCredentials)

		rec := serve(newTestEcho(), h.Login,
			jsonRequest(http.MethodPost, "/api/login", `{"email":"a@x.com","password":"nope"}`))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, map[string]any{"message": "Invalid email or password"}, decodeBody(t, rec))
	})

	t.Run("server error", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
			Return(nil, domainerrors.ErrLoginFailed.WithCause(assert.AnError))

		rec := serve(newTestEcho(), h.Login,
			jsonRequest(http.MethodPost, "/api/login", `{"email":"a@x.com","password":"pw123"}`))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"message": "Server error during login"}, decodeBody(t, rec))
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)
		userID := uuid.New()

		uc.EXPECT().Me(mock.Anything, userID).
			Return(&entity.PublicUser{ID: userID, Email: "a@x.com", Username: "ana"}, nil)

		rec := serve(newTestEcho(), h.Me, httptest.NewRequest(http.MethodGet, "/api/me", nil),
			func(c echo.Context) { deliverycontext.SetUserID(c, userID) })

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "a@x.com", body["user"].(map[string]any)["email"])
	})

	t.Run("no user on context", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)

		rec := serve(newTestEcho(), h.Me, httptest.NewRequest(http.MethodGet, "/api/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	rec := serve(newTestEcho(), HealthCheck, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "ok"}, decodeBody(t, rec))
}

