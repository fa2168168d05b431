package usecase

import (
	"context"

	"houses/internal/domain/entity"
)

// UploadUsecase issues direct-upload authorizations for listing photos
type UploadUsecase interface {
	// CreateImageSignature signs an upload for the request identity.
	CreateImageSignature(ctx context.Context, rc RequestContext) (*entity.ImageSignature, error)
}
