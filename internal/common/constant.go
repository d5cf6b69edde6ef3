// Package common contains shared constants, sentinel errors and small helpers
// used across GophGallery client components.
package common

// Header names attached by the outbound hook.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the local_storage table.
const (
	StorageKeyAccessToken = "access_token"
	StorageKeyUserInfo    = "user_info"
	StorageKeyTheme       = "theme"
)

// Route paths the pipeline redirects to on its own.
const (
	LoginPath = "/login"
	HomePath  = "/"
)
