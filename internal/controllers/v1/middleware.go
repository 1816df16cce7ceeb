package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
)

// contextProfile is the gin context key the authenticated profile ID is
// stored under.
const contextProfile = "pocketplan:profile"

// Authenticate resolves the bearer token from the Authorization header to a
// profile and aborts with 401 when that is not possible.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
			return
		}

		id, err := models.ResolveSession(models.DB, token)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.Set(contextProfile, id)
		c.Next()
	}
}

// profileID returns the authenticated profile's ID. Only valid on routes
// behind Authenticate.
func profileID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextProfile).(uuid.UUID)
}

func bearerToken(c *gin.Context) (uuid.UUID, error) {
	raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found {
		return uuid.Nil, models.ErrNoSession
	}

	token, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, models.ErrNoSession
	}

	return token, nil
}
