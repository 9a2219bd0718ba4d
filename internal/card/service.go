package card

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/evoteng/voter-card-api/internal/card/model"
	"github.com/evoteng/voter-card-api/internal/storage"
	"github.com/evoteng/voter-card-api/internal/system/config"
	"github.com/evoteng/voter-card-api/internal/system/error/serviceerror"
	"github.com/evoteng/voter-card-api/internal/system/log"
)

// maxPhotoBytes caps how much of a photo asset is read into memory.
const maxPhotoBytes = 5 << 20

// ApplicationGateway is what the card module needs from the application
// record owner: an approved snapshot to render from, the previously stored
// card location, and a place to persist each new one.
type ApplicationGateway interface {
	ApprovedSnapshot(ctx context.Context, vin string) (*model.VoterCardRequest, *serviceerror.ServiceError)
	StoredCardLocation(ctx context.Context, vin string) (*model.StoredArtifact, *serviceerror.ServiceError)
	PersistCardLocation(ctx context.Context, vin, url, cardID string) *serviceerror.ServiceError
}

// CardService runs the issuance pipeline.
type CardService interface {
	// IssueCard runs the full pipeline for a snapshot and returns the stored
	// artifact location.
	IssueCard(ctx context.Context, req *model.VoterCardRequest) (*model.StoredArtifact, *serviceerror.ServiceError)
	// IssueForApplication looks up the approved snapshot for a VIN and issues
	// a card for it.
	IssueForApplication(ctx context.Context, vin string) (*model.StoredArtifact, *serviceerror.ServiceError)
	// DownloadCard produces the freshest card document for a VIN. The PDF
	// bytes are nil when regeneration is disabled and a stored artifact can be
	// served instead.
	DownloadCard(ctx context.Context, vin string) ([]byte, *model.StoredArtifact, *serviceerror.ServiceError)
}

type cardService struct {
	gateway    ApplicationGateway
	store      storage.ArtifactStore
	cfg        *config.CardConfig
	httpClient *http.Client
	logger     *log.Logger
}

func newCardService(gateway ApplicationGateway, store storage.ArtifactStore, cfg *config.CardConfig) CardService {
	return &cardService{
		gateway:    gateway,
		store:      store,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.PhotoFetchTimeout},
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CardService")),
	}
}

// IssueCard sequences BuildUrl -> EncodeQr -> Render -> Upload -> Persist.
// Every stage failure is terminal for the attempt and leaves the application
// record untouched; callers retry by re-running the whole pipeline, which
// writes a fresh uniquely named object.
func (s *cardService) IssueCard(ctx context.Context, req *model.VoterCardRequest) (*model.StoredArtifact, *serviceerror.ServiceError) {
	_, artifact, svcErr := s.runPipeline(ctx, req)
	if svcErr != nil {
		return nil, svcErr
	}
	return artifact, nil
}

func (s *cardService) IssueForApplication(ctx context.Context, vin string) (*model.StoredArtifact, *serviceerror.ServiceError) {
	if !s.cfg.AlwaysRegenerate {
		artifact, svcErr := s.gateway.StoredCardLocation(ctx, vin)
		if svcErr != nil {
			return nil, svcErr
		}
		if artifact != nil {
			return artifact, nil
		}
	}

	req, svcErr := s.gateway.ApprovedSnapshot(ctx, vin)
	if svcErr != nil {
		return nil, svcErr
	}
	return s.IssueCard(ctx, req)
}

func (s *cardService) DownloadCard(ctx context.Context, vin string) ([]byte, *model.StoredArtifact, *serviceerror.ServiceError) {
	if !s.cfg.AlwaysRegenerate {
		artifact, svcErr := s.gateway.StoredCardLocation(ctx, vin)
		if svcErr != nil {
			return nil, nil, svcErr
		}
		if artifact != nil {
			return nil, artifact, nil
		}
	}

	req, svcErr := s.gateway.ApprovedSnapshot(ctx, vin)
	if svcErr != nil {
		return nil, nil, svcErr
	}

	pdfBytes, artifact, svcErr := s.runPipeline(ctx, req)
	if svcErr != nil {
		return nil, nil, svcErr
	}
	return pdfBytes, artifact, nil
}

func (s *cardService) runPipeline(ctx context.Context, req *model.VoterCardRequest) ([]byte, *model.StoredArtifact, *serviceerror.ServiceError) {
	if err := req.Validate(time.Now()); err != nil {
		return nil, nil, serviceerror.CustomServiceError(serviceerror.InvalidInputError, err.Error())
	}

	verificationURL, err := BuildVerificationURL(s.cfg.VerificationOrigin, req.VIN)
	if err != nil {
		return nil, nil, serviceerror.CustomServiceError(serviceerror.InvalidInputError, err.Error())
	}

	qrPNG, err := encodeVerificationQR(verificationURL, s.cfg.QRSize)
	if err != nil {
		s.logger.Error("QR encoding failed", log.String("vin", req.VIN), log.Error(err))
		return nil, nil, serviceerror.CustomServiceError(serviceerror.QrEncodingError, err.Error())
	}

	// Photo fetch is best effort: the renderer falls back to the placeholder.
	photo := s.fetchPhoto(ctx, req.PassportPhotoURL)

	pdfBytes, err := renderCard(req, qrPNG, photo)
	if err != nil {
		s.logger.Error("Card rendering failed", log.String("vin", req.VIN), log.Error(err))
		return nil, nil, serviceerror.CustomServiceError(serviceerror.RenderingError, err.Error())
	}

	objectPath := fmt.Sprintf("voter-cards/%s-%d.pdf", req.VIN, time.Now().UnixNano())
	url, err := s.store.Put(ctx, objectPath, "application/pdf", pdfBytes)
	if err != nil {
		s.logger.Error("Card upload failed", log.String("vin", req.VIN), log.Error(err))
		return nil, nil, serviceerror.CustomServiceError(serviceerror.StorageUnavailableError, err.Error())
	}

	artifact := &model.StoredArtifact{
		URL:    url,
		CardID: CardID(req.ApplicationRef),
	}

	// Persist only after a successful upload. Concurrent issuances for the
	// same VIN race here; last writer wins, and both locations are equivalent
	// derivations of the same snapshot.
	if svcErr := s.gateway.PersistCardLocation(ctx, req.VIN, artifact.URL, artifact.CardID); svcErr != nil {
		return nil, nil, svcErr
	}

	s.logger.Info("Voter card issued",
		log.String("vin", req.VIN),
		log.String("card_id", artifact.CardID),
		log.Int("pdf_bytes", len(pdfBytes)))

	return pdfBytes, artifact, nil
}

func (s *cardService) fetchPhoto(ctx context.Context, photoURL string) []byte {
	if photoURL == "" {
		return nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		s.logger.Warn("Invalid photo URL, rendering placeholder", log.String("url", photoURL), log.Error(err))
		return nil
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Warn("Photo fetch failed, rendering placeholder", log.String("url", photoURL), log.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Photo fetch returned non-200, rendering placeholder",
			log.String("url", photoURL),
			log.Int("status", resp.StatusCode))
		return nil
	}

	photo, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes))
	if err != nil {
		s.logger.Warn("Photo read failed, rendering placeholder", log.String("url", photoURL), log.Error(err))
		return nil
	}
	return photo
}
