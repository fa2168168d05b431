package auth

import (
	"context"

	"houses/config"
	"houses/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// idTokenVerifier is the part of *firebaseauth.Client the verifier needs.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier initializes the Firebase Admin SDK and returns a verifier
// for Firebase ID tokens. Without a credentials path the SDK falls back to
// application default credentials.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.IdentityVerifier, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Auth client")
	}

	return newFirebaseVerifier(client), nil
}

func newFirebaseVerifier(client idTokenVerifier) *firebaseVerifier {
	return &firebaseVerifier{client: client}
}

// VerifyToken checks signature, expiry and audience of a Firebase ID token
func (v *firebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify ID token")
	}

	if decoded.UID == "" {
		return "", errors.New("ID token has no uid")
	}

	return decoded.UID, nil
}
