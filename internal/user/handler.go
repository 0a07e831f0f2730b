package user

import (
	"errors"
	"net/http"
	"strconv"

	"userhub/internal/api"
	"userhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates a new user account. The email must not be taken.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      CreateUserRequest  true  "User payload"
// @Success      201      {object}  User
// @Failure      400      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ValidationErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/users/ [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, api.ValidationErrorResponse{
			Error:   "validation failed",
			Details: api.ValidateStruct(req),
		})
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create user"})
		return
	}

	metrics.RecordUserCreated()
	c.JSON(http.StatusCreated, user)
}

// GetUserByEmail godoc
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  query     string  true  "Email to look up"
// @Success      200    {object}  User
// @Failure      404    {object}  api.ErrorResponse
// @Failure      422    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /api/users/ [get]
func (h *Handler) GetUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "email query parameter is required"})
		return
	}

	user, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.RecordUserLookup(false)
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch user"})
		return
	}

	metrics.RecordUserLookup(true)
	c.JSON(http.StatusOK, user)
}

// GetUserByID godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {object}  User
// @Failure      404     {object}  api.ErrorResponse
// @Failure      422     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /api/users/{userID} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "userID must be an integer"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.RecordUserLookup(false)
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch user"})
		return
	}

	metrics.RecordUserLookup(true)
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Deletes the user with the given id. Unknown ids report 404.
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      422     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /api/users/{userID} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: "userID must be an integer"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete user"})
		return
	}

	metrics.RecordUserDeleted()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted successfully"})
}
