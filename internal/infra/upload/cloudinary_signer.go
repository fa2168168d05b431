// Package upload signs direct browser uploads to Cloudinary.
package upload

import (
	"fmt"
	"net/url"

	"houses/config"
	"houses/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/pkg/errors"
)

const uploadURLFormat = "https://api.cloudinary.com/v1_1/%s/image/upload"

// Parameters Cloudinary leaves out of the signed string.
var unsignedParams = map[string]struct{}{
	"file":          {},
	"cloud_name":    {},
	"resource_type": {},
	"api_key":       {},
}

type cloudinarySigner struct {
	secret string
	target service.UploadTarget
}

// NewCloudinarySigner creates a signer for the configured cloud. The API
// secret stays inside the signer.
func NewCloudinarySigner(cfg *config.Config) (service.UploadSigner, error) {
	if cfg.Cloudinary == nil {
		return nil, errors.New("cloudinary configuration is required")
	}

	c := cfg.Cloudinary
	if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
		return nil, errors.New("cloudinary cloudName, apiKey and apiSecret must be provided")
	}

	return &cloudinarySigner{
		secret: c.APISecret,
		target: service.UploadTarget{
			APIKey:    c.APIKey,
			CloudName: c.CloudName,
			UploadURL: fmt.Sprintf(uploadURLFormat, c.CloudName),
			Folder:    c.Folder,
		},
	}, nil
}

// Sign produces the Cloudinary API request signature for params.
func (s *cloudinarySigner) Sign(params map[string]string) (string, error) {
	values := signedValues(params)
	if len(values) == 0 {
		return "", errors.New("no parameters to sign")
	}

	sig, err := api.SignParameters(values, s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign upload parameters")
	}

	return sig, nil
}

func (s *cloudinarySigner) Target() service.UploadTarget {
	return s.target
}

// signedValues drops empty values and the parameters Cloudinary does not sign.
func signedValues(params map[string]string) url.Values {
	values := url.Values{}
	for k, v := range params {
		if _, skip := unsignedParams[k]; skip || v == "" {
			continue
		}
		values.Set(k, v)
	}

	return values
}
