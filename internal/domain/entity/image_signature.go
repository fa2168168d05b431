package entity

// ImageSignature authorizes one direct upload to the image provider.
// It is issued per request and never stored.
type ImageSignature struct {
	Signature string
	Timestamp int64
	APIKey    string
	CloudName string
	UploadURL string
	Folder    string
}
