package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// UPLOAD DTOs
// ========================================

// SignUploadRequest asks for a pre-signed PUT URL for one object.
type SignUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

func (r SignUploadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Filename,
			validation.Required.Error("filename is required"),
			validation.Length(1, 512),
		),
		validation.Field(&r.ContentType,
			validation.Required.Error("contentType is required"),
		),
	)
}

// SignUploadResponse returns both the signed URL and the object key:
// the client uploads to the URL, then reports the key back through
// the asset-record endpoint.
type SignUploadResponse struct {
	SignedURL string `json:"signedUrl"`
	FileKey   string `json:"fileKey"`
}
