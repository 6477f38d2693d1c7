package v1

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pennywise/backend/internal/models"
)

type UserRegister struct {
	Email    string `json:"email" example:"jane@example.com"` // The email address, used for login
	Password string `json:"password" example:"correct horse battery staple"`
	Name     string `json:"name" example:"Jane" default:""` // Display name
}

type UserLogin struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type UserVerify struct {
	Token string `json:"token" example:"8cf3c865-7cd9-4060-906c-35ed40867a45"` // The verification token from the registration email
}

type UserLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/users/me"`          // The user itself
	Export string `json:"export" example:"https://example.com/api/v1/users/me/export"` // Export of all data belonging to the user
}

// User is the representation of a User in API v1.
type User struct {
	models.DefaultModel
	Email         string    `json:"email" example:"jane@example.com"`
	Name          string    `json:"name" example:"Jane"`
	EmailVerified bool      `json:"emailVerified" example:"true"`
	Links         UserLinks `json:"links"`
}

// newUser returns the API v1 representation of the resource
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel:  model.DefaultModel,
		Email:         model.Email,
		Name:          model.Name,
		EmailVerified: model.EmailVerified,
		Links: UserLinks{
			Self:   fmt.Sprintf("%s/v1/users/me", url),
			Export: fmt.Sprintf("%s/v1/users/me/export", url),
		},
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
	Data  *User   `json:"data"`                                               // The User data
}

type LoginResponse struct {
	Error *string `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
	Token *string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Data  *User   `json:"data"` // The logged in User
}

type ExportResponse struct {
	Error *string                    `json:"error" example:"there is no user matching your query"` // The error, if any occurred
	Data  map[string]json.RawMessage `json:"data"`                                                 // All resources of the user, keyed by resource type
}
