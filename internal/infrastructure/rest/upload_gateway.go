package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// UploadGateway streams images to the media endpoints as multipart bodies.
type UploadGateway struct {
	client *Client
}

func NewUploadGateway(client *Client) *UploadGateway {
	return &UploadGateway{client: client}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (g *UploadGateway) UploadImage(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.CopyN(part, r, size); err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalise upload form: %w", err)
	}

	req, err := g.client.newRequest(ctx, http.MethodPost, "/upload/image", nil, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out uploadResponse
	if err := g.client.send(req, "/upload/image", &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (g *UploadGateway) DeleteImage(ctx context.Context, imageURL string) error {
	query := url.Values{"url": {imageURL}}
	return g.client.doJSON(ctx, http.MethodDelete, "/upload/image", "/upload/image", query, nil, nil)
}
