package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/speech-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/speech-service/internal/app"
	"github.com/jsamuelsen/speech-service/internal/domain"
)

// Success messages returned in the response envelope.
const (
	MessageSpeechesRetrieved = "Speeches retrieved successfully"
	MessageSpeechRetrieved   = "Speech retrieved successfully"
	MessageSpeechCreated     = "Speech created successfully"
	MessageSpeechUpdated     = "Speech updated successfully"
	MessageSpeechDeleted     = "Speech deleted successfully"
	MessageIDMismatch        = "Conflict: ID in path does not match ID in request body"
)

// SpeechHandler handles the speech CRUD and search endpoints.
type SpeechHandler struct {
	service *app.SpeechService
}

// NewSpeechHandler creates a new speech handler.
func NewSpeechHandler(service *app.SpeechService) *SpeechHandler {
	return &SpeechHandler{
		service: service,
	}
}

// List handles GET /speeches.
//
// @Summary List speeches
// @Tags speeches
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.SpeechResponse}
// @Router /api/v1/speeches [get]
func (h *SpeechHandler) List(c *gin.Context) {
	speeches, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respond(c, http.StatusOK, MessageSpeechesRetrieved, dto.NewSpeechResponses(speeches))
}

// Get handles GET /speeches/:id.
//
// @Summary Get a speech by ID
// @Tags speeches
// @Produce json
// @Param id path int true "Speech ID"
// @Success 200 {object} dto.Response{data=dto.SpeechResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/speeches/{id} [get]
func (h *SpeechHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	speech, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respond(c, http.StatusOK, MessageSpeechRetrieved, dto.NewSpeechResponse(speech))
}

// Search handles GET /speeches/search.
// Every filter is optional; a search that matches nothing returns 404.
//
// @Summary Search speeches
// @Tags speeches
// @Produce json
// @Param author query string false "Exact author, case insensitive"
// @Param snippet query string false "Text contained in the content"
// @Param startDate query string false "RFC 3339 lower bound, needs endDate"
// @Param endDate query string false "RFC 3339 upper bound, needs startDate"
// @Param keywords query []string false "Any of these keywords" collectionFormat(multi)
// @Success 200 {object} dto.Response{data=[]dto.SpeechResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/speeches/search [get]
func (h *SpeechHandler) Search(c *gin.Context) {
	var query dto.SearchQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleError(c, err)
		return
	}

	speeches, err := h.service.Search(c.Request.Context(), query.Criteria())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respond(c, http.StatusOK, MessageSpeechesRetrieved, dto.NewSpeechResponses(speeches))
}

// Create handles POST /speeches.
//
// @Summary Create a speech
// @Tags speeches
// @Accept json
// @Produce json
// @Param speech body dto.CreateSpeechRequest true "Speech"
// @Success 201 {object} dto.Response{data=dto.SpeechResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /api/v1/speeches [post]
func (h *SpeechHandler) Create(c *gin.Context) {
	var req dto.CreateSpeechRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	speech, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respond(c, http.StatusCreated, MessageSpeechCreated, dto.NewSpeechResponse(speech))
}

// Update handles PUT /speeches/:id.
// The body id must equal the path id; a mismatch is rejected before the service runs.
//
// @Summary Update a speech
// @Tags speeches
// @Accept json
// @Produce json
// @Param id path int true "Speech ID"
// @Param speech body dto.UpdateSpeechRequest true "Speech"
// @Success 200 {object} dto.Response{data=dto.SpeechResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /api/v1/speeches/{id} [put]
func (h *SpeechHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var req dto.UpdateSpeechRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if *req.ID != id {
		c.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, MessageIDMismatch).
			WithTraceID(dto.GetTraceID(c)))

		return
	}

	speech, err := h.service.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respond(c, http.StatusOK, MessageSpeechUpdated, dto.NewSpeechResponse(speech))
}

// Delete handles DELETE /speeches/:id.
//
// @Summary Delete a speech
// @Tags speeches
// @Produce json
// @Param id path int true "Speech ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /api/v1/speeches/{id} [delete]
func (h *SpeechHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	respond(c, http.StatusOK, MessageSpeechDeleted, nil)
}

// RegisterSpeechRoutes registers speech routes on the given router group.
// The static /search route takes precedence over /:id.
func (h *SpeechHandler) RegisterSpeechRoutes(rg *gin.RouterGroup) {
	speeches := rg.Group("/speeches")
	speeches.GET("", h.List)
	speeches.GET("/search", h.Search)
	speeches.GET("/:id", h.Get)
	speeches.POST("", h.Create)
	speeches.PUT("/:id", h.Update)
	speeches.DELETE("/:id", h.Delete)
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewResponse(status, message, data).WithTraceID(dto.GetTraceID(c)))
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationErrorWithValue("id", "must be a positive integer", raw)
	}

	return id, nil
}
