package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/techq/techq-be/internal/model"
	"github.com/techq/techq-be/internal/service"
)

const contactPath = "/functions/v1/send-contact-email"

type ContactHandlerTestSuite struct {
	suite.Suite
	contact *mockContactSubmitter
	limiter *stubLimiter
	router  http.Handler
}

func (s *ContactHandlerTestSuite) SetupTest() {
	s.contact = &mockContactSubmitter{}
	s.limiter = &stubLimiter{allow: true}
	s.router = SetupRouter(Dependencies{
		Chat:           &mockChatReplier{},
		Contact:        s.contact,
		Limiter:        s.limiter,
		LogStore:       stubPinger{},
		AllowedOrigins: []string{testOrigin},
		Logger:         discardLogger(),
	})
}

func (s *ContactHandlerTestSuite) TearDownTest() {
	s.contact.AssertExpectations(s.T())
}

func (s *ContactHandlerTestSuite) post(body []byte) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, newRequest(http.MethodPost, contactPath, body))
	return rec
}

func (s *ContactHandlerTestSuite) assertFailure(rec *httptest.ResponseRecorder, code int, message string) {
	s.Equal(code, rec.Code)
	body := decodeBody(s.T(), rec)
	s.Equal(false, body["success"])
	s.Equal(message, body["error"])
	s.Equal(testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func validForm() map[string]string {
	return map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"phone":     "0615551234",
		"company":   "Acme",
		"service":   "web-development",
		"message":   "Hello",
	}
}

func (s *ContactHandlerTestSuite) TestRoundTrip() {
	want := model.ContactSubmission{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "0615551234",
		Company:   "Acme",
		Service:   "web-development",
		Message:   "Hello",
	}
	s.contact.On("Submit", mock.Anything, want).
		Return(&model.ContactResult{BusinessEmailID: "biz-1", CustomerEmailID: "cust-1"}, nil).Once()

	rec := s.post(mustJSON(s.T(), validForm()))

	s.Equal(http.StatusOK, rec.Code)
	body := decodeBody(s.T(), rec)
	s.Equal(true, body["success"])
	s.Equal("Emails sent successfully", body["message"])
	s.Equal("biz-1", body["businessEmailId"])
	s.Equal("cust-1", body["customerEmailId"])
	s.Equal(service.ContactPolicy, s.limiter.policies[0])
}

func (s *ContactHandlerTestSuite) TestFieldsAreTrimmed() {
	form := validForm()
	form["firstName"] = "  Jane "
	form["message"] = "\n Hello \n"
	s.contact.On("Submit", mock.Anything, mock.MatchedBy(func(sub model.ContactSubmission) bool {
		return sub.FirstName == "Jane" && sub.Message == "Hello"
	})).Return(&model.ContactResult{}, nil).Once()

	rec := s.post(mustJSON(s.T(), form))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ContactHandlerTestSuite) TestHoneypot() {
	form := validForm()
	form["honeypot"] = "http://spam.example"

	rec := s.post(mustJSON(s.T(), form))

	s.assertFailure(rec, http.StatusBadRequest, "Invalid form submission")
	s.contact.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *ContactHandlerTestSuite) TestHoneypotLooksLikeMalformedInput() {
	form := validForm()
	form["honeypot"] = "x"
	bot := s.post(mustJSON(s.T(), form))
	malformed := s.post([]byte(`{"firstName":`))

	s.Equal(malformed.Code, bot.Code)
	s.Equal(malformed.Body.String(), bot.Body.String())
}

func (s *ContactHandlerTestSuite) TestValidation() {
	tests := []struct {
		field string
		value string
		want  string
	}{
		{"firstName", "", "firstName is required"},
		{"lastName", "   ", "lastName is required"},
		{"firstName", strings.Repeat("a", 51), "firstName must be at most 50 characters"},
		{"email", "jane.example.com", "Invalid email address"},
		{"email", "jane@example", "Invalid email address"},
		{"phone", "call me maybe", "Invalid phone number"},
		{"phone", "123456", "Invalid phone number"},
		{"company", strings.Repeat("c", 101), "company must be at most 100 characters"},
		{"service", "", "service is required"},
		{"message", strings.Repeat("m", 2001), "message must be at most 2000 characters"},
	}

	for _, tt := range tests {
		s.Run(fmt.Sprintf("%s=%.20q", tt.field, tt.value), func() {
			form := validForm()
			form[tt.field] = tt.value
			rec := s.post(mustJSON(s.T(), form))
			s.assertFailure(rec, http.StatusBadRequest, tt.want)
		})
	}
	s.contact.AssertNotCalled(s.T(), "Submit", mock.Anything, mock.Anything)
}

func (s *ContactHandlerTestSuite) TestAcceptedShapes() {
	s.contact.On("Submit", mock.Anything, mock.Anything).Return(&model.ContactResult{}, nil).Times(3)

	for _, phone := range []string{"+27 61 555-1234", "(061) 555 1234", "0615551"} {
		form := validForm()
		form["phone"] = phone
		rec := s.post(mustJSON(s.T(), form))
		s.Equal(http.StatusOK, rec.Code, phone)
	}
}

func (s *ContactHandlerTestSuite) TestBodyTooLarge() {
	form := validForm()
	form["message"] = strings.Repeat("m", 10000)

	rec := s.post(mustJSON(s.T(), form))

	s.assertFailure(rec, http.StatusRequestEntityTooLarge, "Request too large")
	s.Zero(s.limiter.calls())
}

func (s *ContactHandlerTestSuite) TestRateLimited() {
	s.limiter.allow = false

	rec := s.post(mustJSON(s.T(), validForm()))

	s.assertFailure(rec, http.StatusTooManyRequests, "Too many requests. Please try again later.")
}

func (s *ContactHandlerTestSuite) TestDeliveryFailure() {
	s.contact.On("Submit", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: resend: 403 domain not verified", service.ErrEmailDelivery)).Once()

	rec := s.post(mustJSON(s.T(), validForm()))

	s.assertFailure(rec, http.StatusInternalServerError, "Failed to send email. Please try again later.")
	s.NotContains(rec.Body.String(), "domain not verified")
}

func (s *ContactHandlerTestSuite) TestMethodNotAllowed() {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, newRequest(http.MethodPut, contactPath, nil))

	s.assertFailure(rec, http.StatusMethodNotAllowed, "Method not allowed")
}

func TestContactHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}
