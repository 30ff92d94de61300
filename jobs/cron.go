package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"guaranihost/services/logger"
)

// FeaturedRefresher vuelve a cargar los destacados de la pantalla de inicio
type FeaturedRefresher interface {
	Refresh(ctx context.Context) error
}

const refreshTimeout = 30 * time.Second

// InitCronJobs programa la recarga de destacados con spec (formato de
// robfig/cron, p. ej. "@every 10m") y arranca el planificador
func InitCronJobs(c *cron.Cron, spec string, refresher FeaturedRefresher, log logger.Logger) error {
	if log == nil {
		log = logger.Nop{}
	}
	_, err := c.AddFunc(spec, func() {
		RefreshFeatured(refresher, log)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs iniciados (%s)", spec)
	return nil
}

// RefreshFeatured ejecuta una recarga; un fallo solo se registra
func RefreshFeatured(refresher FeaturedRefresher, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := refresher.Refresh(ctx); err != nil {
		log.Warn("recarga de destacados: %v", err)
		return
	}
	log.Debug("destacados recargados en %s", time.Since(start))
}
