package models

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// UploadStatus tracks a pending image through its client-side lifecycle.
type UploadStatus string

const (
	UploadPending  UploadStatus = "pending"
	UploadUploaded UploadStatus = "uploaded"
)

// PendingImage is a transient, client-only record pairing a local file with
// its upload metadata. It is created when a file is staged on a form,
// promoted to a server-side BlogImage after a successful upload, and
// discarded when removed or when the owning form is abandoned.
type PendingImage struct {
	ID      string
	Path    string
	AltText string
	Caption string
	Status  UploadStatus
}

// NewPendingImage stages the file at path for upload. The path must point at
// an existing regular file.
func NewPendingImage(path string) (*PendingImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat image file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return &PendingImage{
		ID:     uuid.NewString(),
		Path:   path,
		Status: UploadPending,
	}, nil
}

// MarkUploaded records that the server accepted the file.
func (p *PendingImage) MarkUploaded() {
	p.Status = UploadUploaded
}
