package handler

import (
	"context"
	"errors"
	"net/http"

	"rockguard/internal/models"
	"rockguard/internal/service"
	"rockguard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContactHandler accepts enquiries from the landing page
type ContactHandler struct {
	service ContactService
}

// ContactService interface for dependency injection
type ContactService interface {
	Submit(context.Context, models.ContactMessage) (*models.ContactMessage, error)
}

// NewContactHandler creates a new contact handler
func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// SubmitJSON handles POST /api/contact requests
//
//	@Summary	Send a contact enquiry
//	@Tags		contact
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.ContactMessage	true	"Enquiry"
//	@Success	201		{object}	models.ContactMessage
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/contact [post]
func (h *ContactHandler) SubmitJSON(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
		return
	}

	saved, err := h.service.Submit(c.Request.Context(), msg)
	if err != nil {
		writeError(c, err)
		return
	}
	log.Info().Int64("id", saved.ID).Str("company", saved.Company).Msg("contact enquiry received")
	c.JSON(http.StatusCreated, saved)
}

// SubmitForm handles POST /contact from the landing page form. A valid
// enquiry redirects back to the form; an invalid one re-renders it.
func (h *ContactHandler) SubmitForm(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBind(&msg); err != nil {
		c.Redirect(http.StatusSeeOther, "/#contact")
		return
	}

	saved, err := h.service.Submit(c.Request.Context(), msg)
	if err != nil {
		var verr *service.ValidationError
		if !errors.As(err, &verr) {
			log.Error().Err(err).Msg("contact enquiry failed")
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		data := web.NewLandingData()
		data.Form = msg
		data.Errors = verr.Fields
		c.HTML(http.StatusUnprocessableEntity, web.PageLanding, data)
		return
	}

	log.Info().Int64("id", saved.ID).Str("company", saved.Company).Msg("contact enquiry received")
	c.Redirect(http.StatusSeeOther, "/?sent=1#contact")
}
