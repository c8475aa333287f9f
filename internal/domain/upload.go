package domain

// UploadTicket is a short-lived credential letting a client upload a file
// directly to the media host under server-dictated constraints. The signature
// binds timestamp, folder and optional preset to the server-held secret; the
// secret itself is never included.
type UploadTicket struct {
	Timestamp    int64  `json:"timestamp"`
	Signature    string `json:"signature"`
	APIKey       string `json:"apiKey"`
	CloudName    string `json:"cloudName"`
	UploadPreset string `json:"uploadPreset,omitempty"`
	Folder       string `json:"folder"`
}

// AssetRef describes an asset the media host accepted, in the provider's own
// field names so it can be persisted against the backend verbatim.
type AssetRef struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Folder    string `json:"folder,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Bytes     int64  `json:"bytes,omitempty"`
	Format    string `json:"format,omitempty"`
}
