package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketplan/backend/internal/httputil"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`      // Health check endpoint
	Version string `json:"version" example:"https://example.com/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/v1"`                // List endpoint for all v1 endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    "/docs/index.html",
			Healthz: "/healthz",
			Version: "/version",
			V1:      "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Health check
// @Description	Returns 200 as long as the process is serving requests
// @Tags			General
// @Success		200
// @Router			/healthz [get]
func GetHealth(c *gin.Context) {
	c.Status(http.StatusOK)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Register      string `json:"register" example:"https://example.com/v1/register"`           // Create a new profile
	Login         string `json:"login" example:"https://example.com/v1/login"`                 // Log in or out
	Months        string `json:"months" example:"https://example.com/v1/months"`               // Monthly budgets with analytics
	Categories    string `json:"categories" example:"https://example.com/v1/categories"`       // Budget categories
	Subcategories string `json:"subcategories" example:"https://example.com/v1/subcategories"` // Budget subcategories
	Transactions  string `json:"transactions" example:"https://example.com/v1/transactions"`   // Income and expense transactions
	Milestones    string `json:"milestones" example:"https://example.com/v1/milestones"`       // Savings milestones
	Data          string `json:"data" example:"https://example.com/v1/data"`                   // Delete all data of the profile
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Register:      "/v1/register",
			Login:         "/v1/login",
			Months:        "/v1/months",
			Categories:    "/v1/categories",
			Subcategories: "/v1/subcategories",
			Transactions:  "/v1/transactions",
			Milestones:    "/v1/milestones",
			Data:          "/v1/data",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
