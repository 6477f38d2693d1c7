package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	v1 "github.com/pennywise/backend/internal/controllers/v1"
	"github.com/pennywise/backend/internal/ledger"
	"github.com/pennywise/backend/internal/mail"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/router"
	"github.com/pennywise/backend/internal/types"
	"github.com/pennywise/backend/internal/uuid"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := suite.Request(http.MethodPost, "/v1/users/register", v1.UserRegister{
		Email:    "Jane@Example.com",
		Password: "correct horse battery staple",
		Name:     "Jane",
	})
	suite.Assert().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var response v1.UserResponse
	suite.decode(recorder, &response)
	suite.Assert().Nil(response.Error)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("jane@example.com", response.Data.Email)
	suite.Assert().False(response.Data.EmailVerified)
	suite.Assert().Contains(response.Data.Links.Self, "/v1/users/me")

	// Registration seeds the starter categories for the current month
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("user_id = ?", response.Data.ID).Count(&count).Error)
	suite.Assert().Equal(int64(5), count)
}

func (suite *TestSuiteStandard) TestRegisterSeedsClockMonth() {
	// The seeding month has to follow the engine's clock, not the wall clock
	engine := ledger.New(models.DB, ledger.WithClock(func() time.Time {
		return time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	}))
	co := v1.New(engine, mail.LogSender{}, testSecret)

	r := gin.New()
	router.AttachRoutes(co, testSecret, r.Group("/"))

	body, err := json.Marshal(v1.UserRegister{Email: "jane@example.com", Password: "correct horse battery staple"})
	suite.Require().Nil(err)

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/users/register", bytes.NewBuffer(body))
	r.ServeHTTP(recorder, req)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var response v1.UserResponse
	suite.decode(*recorder, &response)
	suite.Require().NotNil(response.Data)

	var categories []models.Category
	suite.Require().Nil(models.DB.Where("user_id = ?", response.Data.ID).Find(&categories).Error)
	suite.Require().NotEmpty(categories)
	for _, category := range categories {
		suite.Assert().True(category.Month.Equal(types.NewMonth(2024, 3)))
	}
}

func (suite *TestSuiteStandard) TestRegisterInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{"email": "no"`},
		{"No email", v1.UserRegister{Password: "correct horse battery staple"}},
		{"Email without @", v1.UserRegister{Email: "jane.example.com", Password: "correct horse battery staple"}},
		{"Password too short", v1.UserRegister{Email: "jane@example.com", Password: "hunter2"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.Request(http.MethodPost, "/v1/users/register", tt.body)
			suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	register := v1.UserRegister{Email: "jane@example.com", Password: "correct horse battery staple"}

	recorder := suite.Request(http.MethodPost, "/v1/users/register", register)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = suite.Request(http.MethodPost, "/v1/users/register", register)
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())

	var response v1.UserResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrEmailNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestVerifyAndLogin() {
	register := v1.UserRegister{Email: "jane@example.com", Password: "correct horse battery staple", Name: "Jane"}
	recorder := suite.Request(http.MethodPost, "/v1/users/register", register)
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	// Logging in before the email is verified is rejected
	recorder = suite.Request(http.MethodPost, "/v1/users/login", v1.UserLogin{Email: register.Email, Password: register.Password})
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())

	// The token would normally arrive by email
	var user models.User
	suite.Require().Nil(models.DB.First(&user, "email = ?", register.Email).Error)

	recorder = suite.Request(http.MethodPost, "/v1/users/verify", v1.UserVerify{Token: user.VerificationToken.String()})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var verified v1.UserResponse
	suite.decode(recorder, &verified)
	suite.Require().NotNil(verified.Data)
	suite.Assert().True(verified.Data.EmailVerified)

	recorder = suite.Request(http.MethodPost, "/v1/users/login", v1.UserLogin{Email: "JANE@example.com ", Password: register.Password})
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var login v1.LoginResponse
	suite.decode(recorder, &login)
	suite.Require().NotNil(login.Token)
	suite.Assert().NotEmpty(*login.Token)

	// The session token works for authenticated endpoints
	recorder = suite.Request(http.MethodGet, "/v1/users/me", nil, map[string]string{"Authorization": "Bearer " + *login.Token})
	suite.Assert().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestVerifyInvalidToken() {
	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-uuid"},
		{"Empty", ""},
		{"Unknown", uuid.NewString()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.Request(http.MethodPost, "/v1/users/verify", v1.UserVerify{Token: tt.token})
			suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())
		})
	}
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	user := suite.createTestUser()

	recorder := suite.Request(http.MethodPost, "/v1/users/login", v1.UserLogin{Email: user.Email, Password: "wrong"})
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())

	recorder = suite.Request(http.MethodPost, "/v1/users/login", v1.UserLogin{Email: "nobody@example.com", Password: "wrong"})
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGetMe() {
	user := suite.createTestUser()

	recorder := suite.Request(http.MethodGet, "/v1/users/me", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.UserResponse
	suite.decode(recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(user.Email, response.Data.Email)
}

func (suite *TestSuiteStandard) TestMeUnauthorized() {
	recorder := suite.Request(http.MethodGet, "/v1/users/me", nil)
	suite.Assert().Equal(http.StatusUnauthorized, recorder.Code, recorder.Body.String())

	recorder = suite.Request(http.MethodGet, "/v1/users/me", nil, map[string]string{"Authorization": "Bearer garbage"})
	suite.Assert().Equal(http.StatusUnauthorized, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestDeleteMe() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})

	recorder := suite.Request(http.MethodDelete, "/v1/users/me", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusNoContent, recorder.Code, recorder.Body.String())

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Where("id = ?", category.ID).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	// The token references a user that no longer exists
	recorder = suite.Request(http.MethodGet, "/v1/users/me", nil, suite.authHeader(user.ID))
	suite.Assert().Equal(http.StatusNotFound, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestExport() {
	user := suite.createTestUser()
	category := suite.createTestCategory(user.ID, ledger.CategoryParams{})
	suite.createTestExpense(user.ID, category.ID, "12.34")

	recorder := suite.Request(http.MethodGet, "/v1/users/me/export", nil, suite.authHeader(user.ID))
	suite.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var response v1.ExportResponse
	suite.decode(recorder, &response)
	suite.Assert().Nil(response.Error)

	for _, key := range []string{"Budget", "Category", "Expense", "History"} {
		suite.Assert().Contains(response.Data, key, fmt.Sprintf("export does not contain %s", key))
	}
}

func (suite *TestSuiteStandard) TestOptionsMe() {
	recorder := suite.Request(http.MethodOptions, "/v1/users/me", nil, suite.authHeader(suite.createTestUser().ID))
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("GET, DELETE", recorder.Header().Get("allow"))
}
