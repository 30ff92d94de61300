package models

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"

	"guaranihost/constants"
	apperrors "guaranihost/errors"
)

// StagedFile es un archivo de imagen seleccionado y aún no subido
type StagedFile struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// StagedImage une la vista previa con su archivo; se mueven siempre juntos
type StagedImage struct {
	PreviewURL string     `json:"previewUrl"`
	File       StagedFile `json:"file"`
}

// ImageBuffer es la lista ordenada de imágenes preparadas antes de enviar
// el formulario. El índice 0 es la imagen de portada.
type ImageBuffer struct {
	items    []StagedImage
	maxItems int
	maxBytes int64
}

// NewImageBuffer crea un buffer con los límites por defecto (10 imágenes, 5MB c/u)
func NewImageBuffer() *ImageBuffer {
	return &ImageBuffer{
		maxItems: constants.MaxImages,
		maxBytes: constants.MaxImageBytes,
	}
}

// Len devuelve la cantidad de imágenes preparadas
func (b *ImageBuffer) Len() int {
	return len(b.items)
}

// Items devuelve una copia de la secuencia en orden
func (b *ImageBuffer) Items() []StagedImage {
	out := make([]StagedImage, len(b.items))
	copy(out, b.items)
	return out
}

// Files devuelve los archivos en el orden actual
func (b *ImageBuffer) Files() []StagedFile {
	out := make([]StagedFile, len(b.items))
	for i, it := range b.items {
		out[i] = it.File
	}
	return out
}

// Primary devuelve la imagen de portada
func (b *ImageBuffer) Primary() (StagedImage, bool) {
	if len(b.items) == 0 {
		return StagedImage{}, false
	}
	return b.items[0], true
}

// Add agrega archivos al final respetando el orden de selección.
// Si algún archivo viola los límites no se agrega ninguno.
func (b *ImageBuffer) Add(files ...StagedFile) error {
	if len(b.items)+len(files) > b.maxItems {
		return apperrors.NewAppError(apperrors.ErrCodeImageLimit,
			fmt.Sprintf("Puedes subir como máximo %d imágenes", b.maxItems), nil)
	}
	for _, f := range files {
		if f.Size > b.maxBytes || int64(len(f.Data)) > b.maxBytes {
			return apperrors.NewAppError(apperrors.ErrCodeImageSize,
				fmt.Sprintf("La imagen %q supera el máximo de %d MB", f.Name, b.maxBytes/(1024*1024)), nil)
		}
	}

	// las vistas previas se generan en paralelo, pero cada una ocupa
	// la posición de su archivo en la selección
	staged := make([]StagedImage, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f StagedFile) {
			defer wg.Done()
			staged[i] = StagedImage{PreviewURL: previewURL(f), File: f}
		}(i, f)
	}
	wg.Wait()

	b.items = append(b.items, staged...)
	return nil
}

// MoveToFirst mueve la imagen i a la portada; no hace nada si i es 0
func (b *ImageBuffer) MoveToFirst(i int) bool {
	if i <= 0 || i >= len(b.items) {
		return false
	}
	item := b.items[i]
	copy(b.items[1:i+1], b.items[:i])
	b.items[0] = item
	return true
}

// MoveLeft intercambia la imagen i con la de su izquierda
func (b *ImageBuffer) MoveLeft(i int) bool {
	if i <= 0 || i >= len(b.items) {
		return false
	}
	b.items[i-1], b.items[i] = b.items[i], b.items[i-1]
	return true
}

// MoveRight intercambia la imagen i con la de su derecha
func (b *ImageBuffer) MoveRight(i int) bool {
	if i < 0 || i >= len(b.items)-1 {
		return false
	}
	b.items[i], b.items[i+1] = b.items[i+1], b.items[i]
	return true
}

// Remove quita la imagen i
func (b *ImageBuffer) Remove(i int) bool {
	if i < 0 || i >= len(b.items) {
		return false
	}
	b.items = append(b.items[:i], b.items[i+1:]...)
	return true
}

// Reset vacía el buffer
func (b *ImageBuffer) Reset() {
	b.items = nil
}

func previewURL(f StagedFile) string {
	ct := f.ContentType
	if ct == "" {
		ct = http.DetectContentType(f.Data)
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}
