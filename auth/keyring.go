// Package auth provides a high-level API for persisting and retrieving user credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "adreel-cli"
	user    = "drive-api-key"
)

// SetDriveKey persists the Google Drive API key to the system keyring.
func SetDriveKey(apiKey string) error {
	return keyring.Set(service, user, apiKey)
}

// GetDriveKey retrieves the Google Drive API key from the system keyring.
func GetDriveKey() (string, error) {
	return keyring.Get(service, user)
}

// DeleteDriveKey removes the Google Drive API key from the system keyring.
func DeleteDriveKey() error {
	return keyring.Delete(service, user)
}
