package upload

import (
	"net/url"
	"testing"

	"houses/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret, folder string) *config.Config {
	return &config.Config{Cloudinary: &config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "123456789",
		APISecret: secret,
		Folder:    folder,
	}}
}

func TestSignedValues(t *testing.T) {
	params := map[string]string{
		"timestamp":     "1315060510",
		"public_id":     "sample_image",
		"eager":         "w_400,h_300,c_pad|w_260,h_200,c_crop",
		"api_key":       "123456789",
		"resource_type": "image",
		"tags":          "",
	}

	assert.Equal(t, url.Values{
		"eager":     {"w_400,h_300,c_pad|w_260,h_200,c_crop"},
		"public_id": {"sample_image"},
		"timestamp": {"1315060510"},
	}, signedValues(params))
}

func TestCloudinarySigner_DocumentedVector(t *testing.T) {
	signer, err := NewCloudinarySigner(newTestConfig("abcd", ""))
	require.NoError(t, err)

	sig, err := signer.Sign(map[string]string{
		"eager":     "w_400,h_300,c_pad|w_260,h_200,c_crop",
		"public_id": "sample_image",
		"timestamp": "1315060510",
	})
	require.NoError(t, err)
	assert.Equal(t, "bfd09f95f331f558cbd1320e67aa8d488770583e", sig)
}

func TestCloudinarySigner_TimestampOnly(t *testing.T) {
	signer, err := NewCloudinarySigner(newTestConfig("secret", ""))
	require.NoError(t, err)

	sig, err := signer.Sign(map[string]string{"timestamp": "1700000000", "api_key": "123456789"})
	require.NoError(t, err)
	assert.Equal(t, "84af3c6077e429a8e7ff26d2ca13d5feb6bc7cb0", sig)
}

func TestCloudinarySigner_Deterministic(t *testing.T) {
	signer, err := NewCloudinarySigner(newTestConfig("secret", "listings"))
	require.NoError(t, err)

	params := map[string]string{"timestamp": "1700000000", "folder": "listings"}
	first, err := signer.Sign(params)
	require.NoError(t, err)
	second, err := signer.Sign(params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "d4a2e5df1408c5c2fbc8c698683fdc442a8033cc", first)

	other, err := signer.Sign(map[string]string{"timestamp": "1700000001", "folder": "listings"})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestCloudinarySigner_DifferentSecretsDiffer(t *testing.T) {
	a, err := NewCloudinarySigner(newTestConfig("secret-a", ""))
	require.NoError(t, err)
	b, err := NewCloudinarySigner(newTestConfig("secret-b", ""))
	require.NoError(t, err)

	params := map[string]string{"timestamp": "1700000000"}
	sigA, err := a.Sign(params)
	require.NoError(t, err)
	sigB, err := b.Sign(params)
	require.NoError(t, err)

	assert.NotEqual(t, sigA, sigB)
}

func TestCloudinarySigner_Target(t *testing.T) {
	signer, err := NewCloudinarySigner(newTestConfig("secret", "listings"))
	require.NoError(t, err)

	target := signer.Target()
	assert.Equal(t, "123456789", target.APIKey)
	assert.Equal(t, "demo", target.CloudName)
	assert.Equal(t, "https://api.cloudinary.com/v1_1/demo/image/upload", target.UploadURL)
	assert.Equal(t, "listings", target.Folder)
}

func TestNewCloudinarySigner_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"missing section", &config.Config{}},
		{"missing secret", newTestConfig("", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, err := NewCloudinarySigner(tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, signer)
		})
	}
}

func TestCloudinarySigner_EmptyParams(t *testing.T) {
	signer, err := NewCloudinarySigner(newTestConfig("secret", ""))
	require.NoError(t, err)

	_, err = signer.Sign(nil)
	assert.Error(t, err)
}
