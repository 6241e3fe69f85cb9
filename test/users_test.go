//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"

	"github.com/2beens/gymtracker/internal/users"

	"github.com/stretchr/testify/assert"
)

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds := newCredentials()
	s.expectStatus(s.doRequest(ctx, "POST", "/a/register", "", creds), http.StatusCreated)
	s.expectStatus(s.doRequest(ctx, "POST", "/a/register", "", creds), http.StatusConflict)

	wrong := users.Credentials{Username: creds.Username, Password: "not-the-password"}
	s.expectStatus(s.doRequest(ctx, "POST", "/a/login", "", wrong), http.StatusUnauthorized)

	var loginResp users.LoginResponse
	s.decodeResponse(s.doRequest(ctx, "POST", "/a/login", "", creds), http.StatusOK, &loginResp)
	assert.NotEmpty(t, loginResp.Token)

	var profile users.Profile
	s.decodeResponse(s.doRequest(ctx, "GET", "/user", loginResp.Token, nil), http.StatusOK, &profile)
	assert.Equal(t, creds.Username, profile.User.Username)
	assert.Empty(t, profile.Plans)
	assert.Empty(t, profile.History)

	s.expectStatus(s.doRequest(ctx, "GET", "/a/logout", loginResp.Token, nil), http.StatusOK)
	s.expectStatus(s.doRequest(ctx, "GET", "/user", loginResp.Token, nil), http.StatusUnauthorized)
}

func (s *IntegrationTestSuite) TestProtectedRoutesWithoutToken() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, path := range []string{"/plans", "/history", "/session", "/reports/summary", "/user"} {
		s.expectStatus(s.doRequest(ctx, "GET", path, "", nil), http.StatusUnauthorized)
		s.expectStatus(s.doRequest(ctx, "GET", path, "bogus-token", nil), http.StatusUnauthorized)
	}
}
