package application

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evoteng/voter-card-api/internal/application/model"
	"github.com/evoteng/voter-card-api/internal/card"
	"github.com/evoteng/voter-card-api/internal/system/constants"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
	"github.com/evoteng/voter-card-api/internal/system/log"
	"github.com/evoteng/voter-card-api/internal/system/utils"
)

// issuanceResult reports the best-effort card issuance that follows an
// approval. A failed issuance is reported, never treated as an approval
// failure.
type issuanceResult struct {
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
	CardID string `json:"card_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ApplicationHandler handles application-related HTTP requests
type ApplicationHandler struct {
	service     ApplicationService
	cardService card.CardService
	logger      *log.Logger
}

// NewApplicationHandler creates a new application handler instance
func NewApplicationHandler(service ApplicationService, cardService card.CardService) *ApplicationHandler {
	return &ApplicationHandler{
		service:     service,
		cardService: cardService,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ApplicationHandler")),
	}
}

// SubmitApplication handles POST /applications
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req model.ApplicationAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendGinError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "Invalid request body"))
		return
	}

	response, serviceErr := h.service.SubmitApplication(c.Request.Context(), req)
	if serviceErr != nil {
		utils.SendGinError(c, serviceErr)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetApplication handles GET /applications/:applicationId
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	vin := c.Param("applicationId")

	response, serviceErr := h.service.GetApplication(c.Request.Context(), vin)
	if serviceErr != nil {
		utils.SendGinError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListApplications handles GET /applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	limit := constants.DefaultPageSize
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= constants.MaxPageSize {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	responses, total, serviceErr := h.service.ListApplications(c.Request.Context(), limit, offset)
	if serviceErr != nil {
		utils.SendGinError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, model.ApplicationSearchResponse{
		Data: responses,
		Metadata: model.ApplicationSearchMetadata{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	})
}

// ApproveApplication handles POST /applications/:applicationId/approve
func (h *ApplicationHandler) ApproveApplication(c *gin.Context) {
	vin := c.Param("applicationId")

	response, serviceErr := h.service.ApproveApplication(c.Request.Context(), vin)
	if serviceErr != nil {
		utils.SendGinError(c, serviceErr)
		return
	}

	// The approval is committed at this point. Issue the card best effort;
	// on failure the card is generated later on first download.
	issuance := issuanceResult{Status: "ISSUED"}
	artifact, issueErr := h.cardService.IssueForApplication(c.Request.Context(), vin)
	if issueErr != nil {
		h.logger.Warn("Card issuance after approval failed",
			log.String("vin", vin),
			log.String("error_code", issueErr.Code),
			log.String("error", issueErr.ErrorDescription))
		issuance = issuanceResult{Status: "FAILED", Error: issueErr.ErrorDescription}
	} else {
		issuance.URL = artifact.URL
		issuance.CardID = artifact.CardID
		response.VoterCardPdfURL = artifact.URL
		response.VoterCardID = artifact.CardID
	}

	c.JSON(http.StatusOK, gin.H{
		"application":   response,
		"card_issuance": issuance,
	})
}

// RejectApplication handles POST /applications/:applicationId/reject
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	vin := c.Param("applicationId")

	response, serviceErr := h.service.RejectApplication(c.Request.Context(), vin)
	if serviceErr != nil {
		utils.SendGinError(c, serviceErr)
		return
	}

	c.JSON(http.StatusOK, response)
}
