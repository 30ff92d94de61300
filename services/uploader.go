package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"

	apperrors "guaranihost/errors"
	"guaranihost/models"
)

// ImageUploader sube las imágenes preparadas y devuelve sus URL en el
// mismo orden (índice 0 = portada)
type ImageUploader interface {
	Upload(ctx context.Context, files []models.StagedFile) ([]string, error)
}

// CloudinaryUploader sube a Cloudinary
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader cld puede ser nil si Cloudinary no está configurado
func NewCloudinaryUploader(cld *cloudinary.Cloudinary, folder string) *CloudinaryUploader {
	if folder == "" {
		folder = "properties"
	}
	return &CloudinaryUploader{cld: cld, folder: folder}
}

// Upload sube en paralelo; si falla una no se devuelve ninguna URL
func (u *CloudinaryUploader) Upload(ctx context.Context, files []models.StagedFile) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	if u.cld == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotConfigured, "La carga de imágenes no está disponible", nil)
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			resp, err := u.cld.Upload.Upload(gctx, bytes.NewReader(f.Data), uploader.UploadParams{Folder: u.folder})
			if err != nil {
				return apperrors.NewAppError(apperrors.ErrCodeUploadFailed, fmt.Sprintf("No se pudo subir %s", f.Name), err)
			}
			if resp.Error.Message != "" {
				return apperrors.NewAppError(apperrors.ErrCodeUploadFailed, fmt.Sprintf("No se pudo subir %s: %s", f.Name, resp.Error.Message), nil)
			}
			urls[i] = resp.SecureURL
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
