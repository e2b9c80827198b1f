// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"slices"
)

// MaxUploadSize is the largest file the platform accepts.
const MaxUploadSize int64 = 50 * 1024 * 1024

var (
	AllowedVideoTypes = []string{"video/mp4", "video/webm", "video/ogg"}
	AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

	AllowedDocumentTypes = []string{
		"application/pdf",
		"text/plain",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

// FileUpload is a file handed to one of the upload calls.
//
// Size is compared against [MaxUploadSize] when known (greater than zero).
// ContentType is checked against the allowed lists of the chosen endpoint.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadResult describes a stored file.
type UploadResult struct {
	URL         string `json:"url" validate:"required"`
	Path        string `json:"path,omitempty"`
	Name        string `json:"name,omitempty"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// IsAllowedType reports whether contentType appears in any of the lists.
func IsAllowedType(contentType string, lists ...[]string) bool {
	for _, l := range lists {
		if slices.Contains(l, contentType) {
			return true
		}
	}
	return false
}
