package service

// UploadSigner signs direct-upload request parameters with a server-held secret.
type UploadSigner interface {
	// Sign returns the provider signature over params. The result depends only
	// on params and the secret.
	Sign(params map[string]string) (string, error)

	// Target describes where the client sends the signed upload.
	Target() UploadTarget
}

// UploadTarget holds the public, non-secret details of the upload endpoint.
type UploadTarget struct {
	APIKey    string
	CloudName string
	UploadURL string
	Folder    string
}
