package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"farmgate/internal/platform/middleware"
	"farmgate/internal/registration/models"
	dErrors "farmgate/pkg/domain-errors"
)

type stubRegistrar struct {
	result *models.RegistrationResult
	err    error

	gotRequest  *models.RegistrationRequest
	gotOperator uuid.UUID
}

func (s *stubRegistrar) Register(_ context.Context, req *models.RegistrationRequest, operatorID uuid.UUID) (*models.RegistrationResult, error) {
	s.gotRequest = req
	s.gotOperator = operatorID
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type HandlerSuite struct {
	suite.Suite
	registrar *stubRegistrar
	handler   *Handler
	operator  uuid.UUID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.registrar = &stubRegistrar{result: &models.RegistrationResult{Success: true}}
	s.handler = New(s.registrar, nil)
	s.operator = uuid.New()
}

func (s *HandlerSuite) post(body string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/farmers/register", strings.NewReader(body))
	if authenticated {
		req = req.WithContext(middleware.WithOperator(req.Context(), s.operator.String(), "operator"))
	}
	rec := httptest.NewRecorder()
	s.handler.Routes().ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestRegisterSuccess() {
	body := `{"farmer":{"username":"ramesh"},"plots":[{"plot":{"gat_number":"123"},"farm":{"area_size":2.5}}]}`
	rec := s.post(body, true)

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(s.operator, s.registrar.gotOperator)
	s.Require().NotNil(s.registrar.gotRequest)
	s.Equal("ramesh", s.registrar.gotRequest.Farmer.Username)

	s.Run("numbers survive as json.Number", func() {
		s.Equal(json.Number("2.5"), s.registrar.gotRequest.Plots[0].Farm.AreaSize)
	})

	var result models.RegistrationResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.True(result.Success)
}

func (s *HandlerSuite) TestStatusMapping() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation maps to 400", dErrors.New(dErrors.CodeValidation, "missing field"), http.StatusBadRequest},
		{"conflict maps to 409", dErrors.New(dErrors.CodeConflict, "duplicate plot"), http.StatusConflict},
		{"precondition maps to 412", dErrors.New(dErrors.CodePrecondition, "no industry"), http.StatusPreconditionFailed},
		{"unauthorized maps to 401", dErrors.New(dErrors.CodeUnauthorized, "operator unknown"), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.registrar.err = tc.err
			rec := s.post(`{"farmer":{}}`, true)
			s.Equal(tc.status, rec.Code)

			var body map[string]string
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			s.NotEmpty(body["error"])
			s.NotEmpty(body["message"])
		})
	}
}

func (s *HandlerSuite) TestInternalErrorsHideDetails() {
	s.registrar.err = context.DeadlineExceeded
	rec := s.post(`{"farmer":{}}`, true)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "deadline")
}

func (s *HandlerSuite) TestMissingOperatorIdentity() {
	rec := s.post(`{"farmer":{}}`, false)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestMalformedBody() {
	rec := s.post(`{"farmer":`, true)
	s.Equal(http.StatusBadRequest, rec.Code)
}
