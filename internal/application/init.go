package application

import (
	"github.com/evoteng/voter-card-api/internal/system/database/provider"
)

// Initialize sets up the application module. Routes are registered by the
// gin router, which needs the card service as well; see internal/router.
func Initialize(dbClient provider.DBClientInterface) ApplicationService {
	return newApplicationService(newApplicationStore(dbClient))
}
