package verification

import (
	"net/http"

	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
	"github.com/evoteng/voter-card-api/internal/system/utils"
)

type verificationHandler struct {
	service VerificationService
}

func newVerificationHandler(service VerificationService) *verificationHandler {
	return &verificationHandler{
		service: service,
	}
}

// verify handles GET /verify/{vin}
func (h *verificationHandler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vin := r.PathValue("vin")

	if vin == "" {
		utils.SendError(w, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "VIN is required"))
		return
	}

	response, serviceErr := h.service.VerifyByVIN(ctx, vin)
	if serviceErr != nil {
		utils.SendError(w, serviceErr)
		return
	}

	utils.JSONResponse(w, http.StatusOK, response)
}
