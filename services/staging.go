package services

import (
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"

	"guaranihost/models"
)

const defaultStagingTTL = 30 * time.Minute

type stagedBuffer struct {
	mu  sync.Mutex
	buf *models.ImageBuffer
}

// StagingStore guarda el buffer de imágenes de cada sesión hasta que se
// envía el formulario. Los buffers sin uso vencen solos.
type StagingStore struct {
	mu    sync.Mutex
	cache *ccache.Cache[*stagedBuffer]
	ttl   time.Duration
}

func NewStagingStore(ttl time.Duration) *StagingStore {
	if ttl <= 0 {
		ttl = defaultStagingTTL
	}
	return &StagingStore{
		cache: ccache.New(ccache.Configure[*stagedBuffer]().MaxSize(5000)),
		ttl:   ttl,
	}
}

func (s *StagingStore) entry(sessionID string) *stagedBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item := s.cache.Get(sessionID); item != nil && !item.Expired() {
		item.Extend(s.ttl)
		return item.Value()
	}
	e := &stagedBuffer{buf: models.NewImageBuffer()}
	s.cache.Set(sessionID, e, s.ttl)
	return e
}

// With ejecuta fn con el buffer de la sesión bloqueado
func (s *StagingStore) With(sessionID string, fn func(buf *models.ImageBuffer) error) error {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.buf)
}

// Snapshot copia el contenido actual del buffer
func (s *StagingStore) Snapshot(sessionID string) []models.StagedImage {
	var items []models.StagedImage
	_ = s.With(sessionID, func(buf *models.ImageBuffer) error {
		items = buf.Items()
		return nil
	})
	return items
}

// Clear descarta el buffer de la sesión
func (s *StagingStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(sessionID)
}
