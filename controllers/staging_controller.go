package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"guaranihost/constants"
	"guaranihost/dto"
	"guaranihost/middleware"
	"guaranihost/models"
	"guaranihost/response"
	"guaranihost/services"
)

// StagingController administra las imágenes elegidas en el formulario de
// propiedades antes de enviarlo. El índice 0 es la portada.
type StagingController struct {
	Staging *services.StagingStore
}

func NewStagingController(staging *services.StagingStore) StagingController {
	return StagingController{Staging: staging}
}

func (s StagingController) view(c *gin.Context) dto.StagingView {
	return dto.NewStagingView(s.Staging.Snapshot(middleware.SessionID(c)), constants.MaxImages)
}

func (s StagingController) GetImages(c *gin.Context) {
	response.Success(c, s.view(c))
}

// AddImages agrega los archivos del campo "images" en el orden recibido
func (s StagingController) AddImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		response.BadRequest(c, "No se recibió ninguna imagen")
		return
	}

	files := make([]models.StagedFile, 0, len(form.File["images"]))
	for _, fh := range form.File["images"] {
		f, err := readStagedFile(fh)
		if err != nil {
			response.BadRequest(c, "No se pudo leer la imagen "+fh.Filename)
			return
		}
		files = append(files, f)
	}

	err = s.Staging.With(middleware.SessionID(c), func(buf *models.ImageBuffer) error {
		return buf.Add(files...)
	})
	if err != nil {
		handleError(c, err, nil)
		return
	}
	response.Success(c, s.view(c))
}

// readStagedFile lee como máximo un byte más que el límite; el buffer
// rechaza el archivo si lo supera
func readStagedFile(fh *multipart.FileHeader) (models.StagedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return models.StagedFile{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, constants.MaxImageBytes+1))
	if err != nil {
		return models.StagedFile{}, err
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return models.StagedFile{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Data:        data,
	}, nil
}

func (s StagingController) MoveToFirst(c *gin.Context) {
	s.reorder(c, (*models.ImageBuffer).MoveToFirst)
}

func (s StagingController) MoveLeft(c *gin.Context) {
	s.reorder(c, (*models.ImageBuffer).MoveLeft)
}

func (s StagingController) MoveRight(c *gin.Context) {
	s.reorder(c, (*models.ImageBuffer).MoveRight)
}

func (s StagingController) RemoveImage(c *gin.Context) {
	s.reorder(c, (*models.ImageBuffer).Remove)
}

// reorder aplica op al índice de la URL. Un índice fuera de rango o un
// movimiento imposible (la primera a la izquierda) no cambia nada.
func (s StagingController) reorder(c *gin.Context, op func(*models.ImageBuffer, int) bool) {
	i, ok := paramIndex(c)
	if !ok {
		return
	}
	_ = s.Staging.With(middleware.SessionID(c), func(buf *models.ImageBuffer) error {
		op(buf, i)
		return nil
	})
	response.Success(c, s.view(c))
}

func (s StagingController) ClearImages(c *gin.Context) {
	s.Staging.Clear(middleware.SessionID(c))
	response.Success(c, s.view(c))
}
