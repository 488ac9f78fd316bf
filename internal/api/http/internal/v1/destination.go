package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KikiG13/travelife/internal/domain"
)

func (h *Handler) initDestinationsRoutes(api *gin.RouterGroup) {
	destinations := api.Group("/destinations", h.userIdentityMiddleware)
	{
		destinations.GET("", h.getDestinationsList)
		destinations.GET("/:id", h.getDestinationByID)
		destinations.POST("", h.createDestination)
		destinations.PATCH("/:id", h.updateDestination)
		destinations.DELETE("/:id", h.deleteDestination)
	}
}

type destinationInput struct {
	Country      string   `json:"country" binding:"required,notblank"`
	City         string   `json:"city" binding:"required,notblank"`
	Comment      *string  `json:"comment"`
	FavoriteDish *string  `json:"favoriteDish"`
	Site1        *string  `json:"site1"`
	Site2        *string  `json:"site2"`
	Site3        *string  `json:"site3"`
	Photo        *string  `json:"photo"`
	Rating       *float64 `json:"rating"`
}

type createDestinationRequest struct {
	Destination *destinationInput `json:"destination" binding:"required"`
}

type updateDestinationRequest struct {
	Destination map[string]any `json:"destination" binding:"required" swaggertype:"object"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type destinationResponse struct {
	ID           string    `json:"id"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Comment      *string   `json:"comment,omitempty"`
	FavoriteDish *string   `json:"favoriteDish,omitempty"`
	Site1        *string   `json:"site1,omitempty"`
	Site2        *string   `json:"site2,omitempty"`
	Site3        *string   `json:"site3,omitempty"`
	Photo        *string   `json:"photo,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
	Owner        any       `json:"owner" swaggertype:"object"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type destinationsListResponse struct {
	Destinations []destinationResponse `json:"destinations"`
}

type destinationItemResponse struct {
	Destination destinationResponse `json:"destination"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// newDestinationResponse renders the owner as a user object when it was
// populated and as the bare id otherwise.
func newDestinationResponse(d *domain.Destination) destinationResponse {
	var owner any = d.OwnerID.String()
	if d.Owner != nil {
		owner = newUserResponse(d.Owner)
	}

	return destinationResponse{
		ID:           d.ID,
		Country:      d.Country,
		City:         d.City,
		Comment:      d.Comment,
		FavoriteDish: d.FavoriteDish,
		Site1:        d.Site1,
		Site2:        d.Site2,
		Site3:        d.Site3,
		Photo:        d.Photo,
		Rating:       d.Rating,
		Owner:        owner,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// @Summary Get Destinations List
// @Tags Destinations
// @Description List every destination with its owner expanded
// @ModuleID getDestinationsList
// @Accept  json
// @Produce  json
// @Success 200 {object} destinationsListResponse
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /destinations [get]
func (h *Handler) getDestinationsList(c *gin.Context) {
	destinations, err := h.services.Destinations.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := destinationsListResponse{
		Destinations: make([]destinationResponse, 0, len(destinations)),
	}
	for i := range destinations {
		response.Destinations = append(response.Destinations, newDestinationResponse(&destinations[i]))
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get Destination By ID
// @Tags Destinations
// @Description Get a single destination with its owner expanded
// @ModuleID getDestinationByID
// @Accept  json
// @Produce  json
// @Param id path string true "Destination ID"
// @Success 200 {object} destinationItemResponse
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /destinations/{id} [get]
func (h *Handler) getDestinationByID(c *gin.Context) {
	destination, err := h.services.Destinations.Show(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, destinationItemResponse{Destination: newDestinationResponse(destination)})
}

// @Summary Create Destination
// @Tags Destinations
// @Description Create a destination owned by the caller. Any owner in the body is ignored.
// @ModuleID createDestination
// @Accept  json
// @Produce  json
// @Param input body createDestinationRequest true "destination"
// @Success 201 {object} destinationItemResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /destinations [post]
func (h *Handler) createDestination(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req createDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindErr(err))
		return
	}

	in := req.Destination
	destination, err := h.services.Destinations.Create(c.Request.Context(), user, domain.Destination{
		Country:      in.Country,
		City:         in.City,
		Comment:      in.Comment,
		FavoriteDish: in.FavoriteDish,
		Site1:        in.Site1,
		Site2:        in.Site2,
		Site3:        in.Site3,
		Photo:        in.Photo,
		Rating:       in.Rating,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, destinationItemResponse{Destination: newDestinationResponse(destination)})
}

// @Summary Update Destination
// @Tags Destinations
// @Description Merge the given fields into a destination the caller owns.
// @Description Empty string values are dropped and owner cannot be changed.
// @ModuleID updateDestination
// @Accept  json
// @Produce  json
// @Param id path string true "Destination ID"
// @Param input body updateDestinationRequest true "fields to change"
// @Success 204
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /destinations/{id} [patch]
func (h *Handler) updateDestination(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req updateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindErr(err))
		return
	}

	if err := h.services.Destinations.Update(c.Request.Context(), user, c.Param("id"), req.Destination); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete Destination
// @Tags Destinations
// @Description Delete a destination the caller owns
// @ModuleID deleteDestination
// @Accept  json
// @Produce  json
// @Param id path string true "Destination ID"
// @Success 204
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /destinations/{id} [delete]
func (h *Handler) deleteDestination(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.services.Destinations.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
