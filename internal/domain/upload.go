package domain

import "time"

// UploadPurpose identifies what an uploaded image is for. It prefixes the object key.
type UploadPurpose string

const (
	UploadAvatar     UploadPurpose = "avatars"
	UploadMarketItem UploadPurpose = "market"
	UploadBanner     UploadPurpose = "banners"
)

// UploadTicket describes a presigned upload. The object itself resides in S3.
type UploadTicket struct {
	ObjectKey   string        `json:"objectKey"`
	UploadURL   string        `json:"uploadUrl"`
	ContentType string        `json:"contentType"`
	Purpose     UploadPurpose `json:"purpose"`
	ExpiresAt   time.Time     `json:"expiresAt"`
}
