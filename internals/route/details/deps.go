package details

import (
	"gorm.io/gorm"

	"mutualaid_backend/internals/helpers/placeholder"
	"mutualaid_backend/internals/helpers/storage"
)

// Deps are the collaborators shared by the feature routes.
type Deps struct {
	DB              *gorm.DB
	Store           storage.Storage
	Placeholder     *placeholder.Generator
	MaxUploadBytes  int64
	UploadRateLimit int
}
