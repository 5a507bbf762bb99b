package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/social-media-os-api/pkg/apiErrors"
	"github.com/vfg2006/social-media-os-api/pkg/log"
)

const (
	CronJobTypeAdMetrics = "ad-metrics"
	CronJobTypeAll       = "all"
)

// CronJob é implementado pelos agendadores que aceitam disparo manual
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices associa o tipo usado na URL ao agendador. Agendadores nil não foram configurados.
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for name := range s {
		types = append(types, name)
	}
	slices.Sort(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica ou todas
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithField("type", cronType)

		if cronType == CronJobTypeAll {
			started := make(map[string]bool, len(services))
			for _, name := range services.types() {
				if job := services[name]; job != nil {
					started[name] = job.TriggerManualSync()
				}
			}
			logger.Info("Disparo manual de todas as cron jobs")
			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": "Cron jobs disparadas",
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, known := services[cronType]
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
				"Tipo de cron job inválido. Valores aceitos: "+strings.Join(append(services.types(), CronJobTypeAll), ", "), nil)
			return
		}
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Agendador não configurado", nil)
			return
		}

		if !job.TriggerManualSync() {
			logger.Info("Cron job já em andamento")
			writeJSON(w, r, http.StatusConflict, map[string]any{
				"message": "Cron job já em andamento",
				"type":    cronType,
			})
			return
		}

		logger.Info("Cron job disparada manualmente")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs configuradas
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			if job == nil {
				status[name] = nil
				continue
			}
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
