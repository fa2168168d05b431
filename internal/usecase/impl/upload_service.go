package impl

import (
	"context"
	"strconv"
	"time"

	"houses/internal/domain/entity"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/domain/service"
	"houses/internal/errors"
	"houses/internal/usecase"
)

// Clock returns the current time. Tests replace it to pin timestamps.
type Clock func() time.Time

type uploadService struct {
	signer service.UploadSigner
	now    Clock
}

// NewUploadService creates a new upload authorization service
func NewUploadService(signer service.UploadSigner) usecase.UploadUsecase {
	return NewUploadServiceWithClock(signer, time.Now)
}

// NewUploadServiceWithClock creates an upload service that reads time from now.
func NewUploadServiceWithClock(signer service.UploadSigner, now Clock) usecase.UploadUsecase {
	return &uploadService{
		signer: signer,
		now:    now,
	}
}

// CreateImageSignature authorizes one direct upload for the request identity
func (s *uploadService) CreateImageSignature(_ context.Context, rc usecase.RequestContext) (*entity.ImageSignature, error) {
	if !rc.Authenticated() {
		return nil, domainerrors.ErrNotAuthorized
	}

	target := s.signer.Target()
	timestamp := s.now().Unix()

	params := map[string]string{
		"timestamp": strconv.FormatInt(timestamp, 10),
	}
	if target.Folder != "" {
		params["folder"] = target.Folder
	}

	signature, err := s.signer.Sign(params)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(errors.Wrap(err, "failed to sign upload"), "upload signing unavailable")
	}

	return &entity.ImageSignature{
		Signature: signature,
		Timestamp: timestamp,
		APIKey:    target.APIKey,
		CloudName: target.CloudName,
		UploadURL: target.UploadURL,
		Folder:    target.Folder,
	}, nil
}
