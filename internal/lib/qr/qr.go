package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator derives verification URLs and artifact paths from a reservation
// id and renders the QR images. It has no state beyond its configuration.
type Generator struct {
	baseURL string
	dir     string
}

// New prepares a generator writing images under dir. The directory is created
// if missing so the first submission does not fail on a fresh deployment.
func New(baseURL, dir string) (*Generator, error) {
	const op = "lib.qr.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Generator{baseURL: baseURL, dir: dir}, nil
}

// VerifyURL is the payload encoded into the QR image and scanned at the door.
func (g *Generator) VerifyURL(id int64) string {
	return fmt.Sprintf("%s/verify/%d", g.baseURL, id)
}

// ArtifactPath is the path the image is served under, relative to the site
// root. The same id always maps to the same path.
func ArtifactPath(id int64) string {
	return fmt.Sprintf("qr-codes/reservation_%d.png", id)
}

// Generate renders the verification URL for id into a PNG on disk and returns
// the relative artifact path to embed in pages and mails.
func (g *Generator) Generate(id int64) (string, error) {
	const op = "lib.qr.Generate"

	rel := ArtifactPath(id)
	file := filepath.Join(g.dir, filepath.Base(rel))

	if err := qrcode.WriteFile(g.VerifyURL(id), qrcode.Medium, 256, file); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return rel, nil
}
