package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"blogctl/internal/models"
)

// UploadImages posts the staged files as one multipart request. Inputs are
// validated at the call site: entries whose path no longer points at a
// regular file are skipped, and if nothing valid remains the call fails
// without touching the network. Alt texts and captions travel as
// JSON-encoded arrays alongside the files, index-aligned with them.
//
// There is no retry and no chunking; one POST with the extended upload
// timeout.
func (c *Client) UploadImages(ctx context.Context, images []*models.PendingImage) Result[[]models.BlogImage] {
	if len(images) == 0 {
		return failMsg[[]models.BlogImage]("No image files provided")
	}

	valid := make([]*models.PendingImage, 0, len(images))
	for _, img := range images {
		info, err := os.Stat(img.Path)
		if err != nil || !info.Mode().IsRegular() {
			c.log.Warn(ctx, "skipping invalid upload entry", "path", img.Path)
			continue
		}
		valid = append(valid, img)
	}
	if len(valid) == 0 {
		return failMsg[[]models.BlogImage]("No valid files to upload")
	}

	body, contentType, err := buildUploadBody(valid)
	if err != nil {
		return fail[[]models.BlogImage](err, "Failed to upload images")
	}

	var env struct {
		Success bool               `json:"success"`
		Data    []models.BlogImage `json:"data"`
	}
	if err := c.roundTrip(ctx, c.upload, http.MethodPost, "/api/blogs/upload-images", nil, body, contentType, &env); err != nil {
		return fail[[]models.BlogImage](err, "Failed to upload images")
	}
	if !env.Success {
		return failMsg[[]models.BlogImage]("Failed to upload images")
	}
	return ok(env.Data)
}

func buildUploadBody(images []*models.PendingImage) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	altTexts := make([]string, len(images))
	captions := make([]string, len(images))

	for i, img := range images {
		altTexts[i] = img.AltText
		captions[i] = img.Caption

		part, err := w.CreateFormFile("images", filepath.Base(img.Path))
		if err != nil {
			return nil, "", err
		}
		f, err := os.Open(img.Path)
		if err != nil {
			return nil, "", err
		}
		_, err = io.Copy(part, f)
		f.Close()
		if err != nil {
			return nil, "", err
		}
	}

	for field, values := range map[string][]string{"altTexts": altTexts, "captions": captions} {
		encoded, err := json.Marshal(values)
		if err != nil {
			return nil, "", err
		}
		if err := w.WriteField(field, string(encoded)); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
