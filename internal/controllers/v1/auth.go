package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/httputil"
	"github.com/pocketplan/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for registration, login and
// logout with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)

	r.OPTIONS("/login", httputil.OptionsPostDelete)
	r.POST("/login", Login)
	r.DELETE("/login", Logout)
}

// Credentials are the user supplied email and password.
type Credentials struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// Session is the API view of a logged in session.
type Session struct {
	Token   uuid.UUID `json:"token" example:"c3d38b9c-8e0a-4d27-8a8c-3e5e66f26f3e"` // The bearer token for subsequent requests
	Email   string    `json:"email" example:"jane@example.com"`
	Profile uuid.UUID `json:"profileId"` // ID of the profile the session belongs to
}

type SessionResponse struct {
	Data  *Session `json:"data"`  // The session, if one was created
	Error *string  `json:"error"` // The error, if any occurred
}

// @Summary		Register
// @Description	Creates a new profile and logs it in
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/register [post]
func Register(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	profile := models.Profile{Email: credentials.Email}
	err = profile.SetPassword(credentials.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	err = models.DB.Create(&profile).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	session, err := models.NewSession(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: &Session{
		Token:   session.Token,
		Email:   profile.Email,
		Profile: profile.ID,
	}})
}

// @Summary		Login
// @Description	Logs a profile in with email and password
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/login [post]
func Login(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	profile, err := models.ProfileByEmail(models.DB, credentials.Email)
	if err != nil {
		// An unknown email reads the same as a wrong password so that
		// the endpoint does not leak which addresses are registered
		e := models.ErrWrongCredentials.Error()
		c.JSON(http.StatusUnauthorized, SessionResponse{Error: &e})
		return
	}

	err = profile.CheckPassword(credentials.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	session, err := models.NewSession(models.DB, profile.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: &Session{
		Token:   session.Token,
		Email:   profile.Email,
		Profile: profile.ID,
	}})
}

// @Summary		Logout
// @Description	Invalidates the session token
// @Tags			Authentication
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/login [delete]
func Logout(c *gin.Context) {
	token, err := bearerToken(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DeleteSession(models.DB, token)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
