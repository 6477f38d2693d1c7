package v1

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pennywise/backend/internal/auth"
	"github.com/pennywise/backend/internal/httputil"
	"github.com/pennywise/backend/internal/mail"
	"github.com/pennywise/backend/internal/models"
	"github.com/pennywise/backend/internal/uuid"
	"github.com/rs/zerolog/log"
)

// RegisterUserRoutes registers the unauthenticated routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/verify", httputil.OptionsPost)
	r.POST("/verify", co.Verify)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
}

// RegisterMeRoutes registers the routes for the authenticated user with
// the RouterGroup that is passed.
func (co Controller) RegisterMeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMe)
	r.GET("", co.GetMe)
	r.DELETE("", co.DeleteMe)

	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", co.Export)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
// @Security		BearerAuth
func (co Controller) OptionsMe(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Register
// @Description	Registers a new user, creates their starter categories for the current month and sends a verification email
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserRegister	true	"User"
// @Router			/v1/users/register [post]
func (co Controller) Register(c *gin.Context) {
	var register UserRegister

	err := httputil.BindData(c, &register)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	if !strings.Contains(register.Email, "@") {
		e := "the email address is invalid"
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &e,
		})
		return
	}

	if len(register.Password) < 8 {
		e := "the password must have at least 8 characters"
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &e,
		})
		return
	}

	hash, err := auth.HashPassword(register.Password)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{
			Error: &e,
		})
		return
	}

	user := models.User{
		Email:             register.Email,
		Name:              register.Name,
		PasswordHash:      hash,
		VerificationToken: uuid.New().UUID,
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	// The user exists at this point, so a failed seed must not fail the
	// registration. The account simply starts without the starter set.
	err = co.engine.SeedDefaultCategories(user.ID, co.engine.CurrentMonth())
	if err != nil {
		log.Error().Err(err).Str("user", user.ID.String()).Msg("seeding default categories failed")
	}

	// Delivery failures only surface in the logs, the registration itself
	// is already complete
	go func(msg mail.Message) {
		if err := co.mail.Send(msg); err != nil {
			log.Error().Err(err).Str("email", msg.Email).Msg("sending verification mail failed")
		}
	}(mail.Message{
		Kind:      mail.KindVerification,
		Email:     user.Email,
		Name:      user.Name,
		Token:     user.VerificationToken.String(),
		Timestamp: time.Now().In(time.UTC),
	})

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Verify email address
// @Description	Verifies the email address of a user with the token from the verification email
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			token	body		UserVerify	true	"Verification token"
// @Router			/v1/users/verify [post]
func (co Controller) Verify(c *gin.Context) {
	var verify UserVerify

	err := httputil.BindData(c, &verify)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var token uuid.UUID
	if err := token.UnmarshalParam(verify.Token); err != nil || token.IsNil() {
		e := errVerificationTokenInvalid.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, "verification_token = ?", token.UUID).Error
	if err != nil {
		e := errVerificationTokenInvalid.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&user).Select("email_verified", "verification_token").Updates(map[string]any{
		"email_verified":     true,
		"verification_token": uuid.Nil.UUID,
	}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	user.EmailVerified = true
	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Logs a user in and returns a session token
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		400		{object}	LoginResponse
// @Failure		500		{object}	LoginResponse
// @Param			user	body		UserLogin	true	"Credentials"
// @Router			/v1/users/login [post]
func (co Controller) Login(c *gin.Context) {
	var login UserLogin

	err := httputil.BindData(c, &login)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(login.Email))).Error
	if err != nil || !auth.CheckPassword(login.Password, user.PasswordHash) {
		e := errCredentialsInvalid.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{
			Error: &e,
		})
		return
	}

	if !user.EmailVerified {
		e := errEmailNotVerified.Error()
		c.JSON(http.StatusBadRequest, LoginResponse{
			Error: &e,
		})
		return
	}

	token, err := auth.GenerateToken(co.jwtSecret, user.ID, 0)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, LoginResponse{Token: &token, Data: &data})
}

// @Summary		Get the authenticated user
// @Description	Returns the currently authenticated user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/users/me [get]
// @Security		BearerAuth
func (co Controller) GetMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", auth.UserID(c)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Delete the authenticated user
// @Description	Deletes the user and all their data, then sends a confirmation email
// @Tags			Users
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/users/me [delete]
// @Security		BearerAuth
func (co Controller) DeleteMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", auth.UserID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.engine.DeleteUser(user.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// The account is gone either way, a failed confirmation mail does not
	// bring it back
	go func(msg mail.Message) {
		if err := co.mail.Send(msg); err != nil {
			log.Error().Err(err).Str("email", msg.Email).Msg("sending account deletion mail failed")
		}
	}(mail.Message{
		Kind:      mail.KindAccountDeletion,
		Email:     user.Email,
		Name:      user.Name,
		Timestamp: time.Now().In(time.UTC),
	})

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Export
// @Description	Returns all resources belonging to the authenticated user as a single JSON document
// @Tags			Users
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/users/me/export [get]
// @Security		BearerAuth
func (co Controller) Export(c *gin.Context) {
	data := make(map[string]json.RawMessage, len(models.Registry))

	for _, exporter := range models.Registry {
		export, err := exporter.Export(auth.UserID(c))
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExportResponse{
				Error: &e,
			})
			return
		}

		data[exporter.Self()] = export
	}

	c.JSON(http.StatusOK, ExportResponse{Data: data})
}
