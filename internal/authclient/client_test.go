package authclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jeebendu/glassy-property-hunter-97/internal/dtos"
	"github.com/jeebendu/glassy-property-hunter-97/internal/models"
	"github.com/jeebendu/glassy-property-hunter-97/internal/routes"
	"github.com/jeebendu/glassy-property-hunter-97/internal/utils"
)

func TestSendOtpRoundTrip(t *testing.T) {
	authToken := uuid.NewString()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, routes.AuthSendOtp, r.URL.Path)

		var req dtos.SendOtpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "buyer@example.com", req.Email)

		utils.RespondWithJSON(w, http.StatusCreated, dtos.SendOtpResponse{AuthToken: authToken})
	}))
	defer srv.Close()

	client := New(srv.URL)
	got, err := client.SendOtp(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	require.Equal(t, authToken, got)
}

func TestVerifyOtpReturnsSession(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, routes.AuthLogin, r.URL.Path)

		var req dtos.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "123456", req.Otp)

		utils.RespondWithJSON(w, http.StatusOK, dtos.SessionResponse{
			User:         models.User{ID: userID, Email: req.Email},
			IDToken:      "id-token",
			RefreshToken: "refresh-token",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	sess, err := client.VerifyOtp(context.Background(), "buyer@example.com", "", "123456", uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, userID, sess.User.ID)
	require.Equal(t, "id-token", sess.IDToken)
	require.Equal(t, "refresh-token", sess.RefreshToken)
}

func TestAPIErrorCarriesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or verification code", nil,
		)
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.VerifyOtp(context.Background(), "buyer@example.com", "", "000000", uuid.NewString())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, utils.ErrCodeInvalidCredentials, apiErr.Code)
	require.Contains(t, apiErr.Message, "verification code")
}

func TestRequestTimesOut(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := New(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := client.SendOtp(context.Background(), "buyer@example.com")
	require.Error(t, err)
	<-started
}

func TestRequestHonorsContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := New(srv.URL)
	_, err := client.SendOtp(ctx, "buyer@example.com")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLogoutSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, routes.AuthLogout, r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		utils.RespondWithJSON(w, http.StatusOK, dtos.LogoutResponse{Message: "Logged out"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	require.NoError(t, client.Logout(context.Background(), "id-token", "refresh-token"))
	require.Equal(t, "Bearer id-token", gotAuth)
}
