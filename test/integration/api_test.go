package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// IntegrationTestSuite exercises a running server over HTTP. Point
// TEST_SERVER_URL at a deployed instance (with its database and Redis up);
// without it the suite is skipped.
type IntegrationTestSuite struct {
	suite.Suite
	client  *http.Client
	baseURL string
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.client = &http.Client{Timeout: 5 * time.Second}

	base := os.Getenv("TEST_SERVER_URL")
	if base == "" {
		s.T().Skip("TEST_SERVER_URL not set; skipping integration tests")
	}
	s.baseURL = base

	if !waitForServerHealthy(s.client, s.baseURL, 30) {
		s.T().Fatal("server did not become healthy in time")
	}
}

// waitForServerHealthy polls the /health endpoint until it returns 200 or
// the timeout (in seconds) elapses.
func waitForServerHealthy(client *http.Client, baseURL string, timeoutSecs int) bool {
	deadline := time.Now().Add(time.Duration(timeoutSecs) * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return false
}

func (s *IntegrationTestSuite) postJSON(path string, body any) (*http.Response, map[string]any) {
	b, err := json.Marshal(body)
	s.Require().NoError(err)
	resp, err := s.client.Post(s.baseURL+path, "application/json", bytes.NewReader(b))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func (s *IntegrationTestSuite) TestHealthCheck() {
	resp, err := s.client.Get(s.baseURL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&health); err == nil {
		if v, ok := health["status"]; ok {
			assert.Equal(s.T(), "healthy", v)
		}
	} else {
		s.T().Logf("health endpoint did not return JSON: %v", err)
	}
}

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
	password := "integration-pass-1"

	resp, _ := s.postJSON("/api/v1/auth/register", map[string]string{
		"email":      email,
		"password":   password,
		"first_name": "Inte",
		"last_name":  "Gration",
		"role":       "chef",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	resp, body := s.postJSON("/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(body["access_token"])
	s.NotEmpty(body["refresh_token"])
	s.Equal("Bearer", body["token_type"])
}

func (s *IntegrationTestSuite) TestLoginQuotaHeadersPresent() {
	resp, _ := s.postJSON("/api/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	// Auth endpoints always advertise their quota.
	s.NotEmpty(resp.Header.Get("X-RateLimit-Limit"))
	s.NotEmpty(resp.Header.Get("X-RateLimit-Remaining"))
	reset, err := time.Parse(time.RFC3339, resp.Header.Get("X-RateLimit-Reset"))
	s.Require().NoError(err)
	s.True(reset.After(time.Now().Add(-time.Second)))
}

func (s *IntegrationTestSuite) TestPublicGigBoard() {
	resp, err := s.client.Get(s.baseURL + "/api/v1/gigs?status=open")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
