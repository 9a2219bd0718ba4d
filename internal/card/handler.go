package card

import (
	"fmt"
	"net/http"

	"github.com/evoteng/voter-card-api/internal/system/constants"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
	"github.com/evoteng/voter-card-api/internal/system/utils"
)

type cardHandler struct {
	service CardService
}

func newCardHandler(service CardService) *cardHandler {
	return &cardHandler{
		service: service,
	}
}

// issueCard handles POST /applications/{applicationId}/voter-card
func (h *cardHandler) issueCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vin := r.PathValue("applicationId")

	if vin == "" {
		utils.SendError(w, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "Application ID is required"))
		return
	}

	artifact, serviceErr := h.service.IssueForApplication(ctx, vin)
	if serviceErr != nil {
		utils.SendError(w, serviceErr)
		return
	}

	utils.JSONResponse(w, http.StatusOK, artifact)
}

// downloadCard handles GET /applications/{applicationId}/voter-card
func (h *cardHandler) downloadCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vin := r.PathValue("applicationId")

	if vin == "" {
		utils.SendError(w, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "Application ID is required"))
		return
	}

	pdfBytes, artifact, serviceErr := h.service.DownloadCard(ctx, vin)
	if serviceErr != nil {
		utils.SendError(w, serviceErr)
		return
	}

	// With regeneration disabled a stored artifact is served by redirect.
	if pdfBytes == nil {
		http.Redirect(w, r, artifact.URL, http.StatusFound)
		return
	}

	w.Header().Set(constants.HeaderContentType, constants.ContentTypePDF)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.CardID+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
