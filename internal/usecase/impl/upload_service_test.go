package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "houses/internal/domain/errors"
	"houses/internal/domain/service"
	mockService "houses/internal/mocks/service"
	"houses/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(unix int64) Clock {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestUploadService_CreateImageSignature_RequiresIdentity(t *testing.T) {
	signer := mockService.NewMockUploadSigner(t)
	svc := NewUploadServiceWithClock(signer, fixedClock(1700000000))

	sig, err := svc.CreateImageSignature(context.Background(), usecase.RequestContext{})
	assert.Nil(t, sig)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
	signer.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestUploadService_CreateImageSignature_SignsTimestamp(t *testing.T) {
	signer := mockService.NewMockUploadSigner(t)
	svc := NewUploadServiceWithClock(signer, fixedClock(1700000000))

	signer.EXPECT().Target().Return(service.UploadTarget{
		APIKey:    "key-123",
		CloudName: "demo",
		UploadURL: "https://api.cloudinary.com/v1_1/demo/image/upload",
	})
	signer.EXPECT().
		Sign(map[string]string{"timestamp": "1700000000"}).
		Return("abc123", nil)

	sig, err := svc.CreateImageSignature(context.Background(), usecase.NewRequestContext("user-1"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", sig.Signature)
	assert.Equal(t, int64(1700000000), sig.Timestamp)
	assert.Equal(t, "key-123", sig.APIKey)
	assert.Equal(t, "demo", sig.CloudName)
	assert.Empty(t, sig.Folder)
}

func TestUploadService_CreateImageSignature_IncludesFolder(t *testing.T) {
	signer := mockService.NewMockUploadSigner(t)
	svc := NewUploadServiceWithClock(signer, fixedClock(1700000001))

	signer.EXPECT().Target().Return(service.UploadTarget{Folder: "listings"})
	signer.EXPECT().
		Sign(map[string]string{"timestamp": "1700000001", "folder": "listings"}).
		Return("def456", nil)

	sig, err := svc.CreateImageSignature(context.Background(), usecase.NewRequestContext("user-1"))
	require.NoError(t, err)
	assert.Equal(t, "listings", sig.Folder)
}

func TestUploadService_CreateImageSignature_SignerFailure(t *testing.T) {
	signer := mockService.NewMockUploadSigner(t)
	svc := NewUploadServiceWithClock(signer, fixedClock(1700000000))

	signer.EXPECT().Target().Return(service.UploadTarget{})
	signer.EXPECT().Sign(mock.Anything).Return("", errors.New("bad algorithm"))

	sig, err := svc.CreateImageSignature(context.Background(), usecase.NewRequestContext("user-1"))
	assert.Nil(t, sig)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", appErr.ErrorCode())
}
