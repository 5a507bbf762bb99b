package googleadsclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/social-media-os-api/pkg/utils"
)

// duringRanges são os períodos aceitos pela cláusula DURING da GAQL
var duringRanges = map[string]struct{}{
	"TODAY":               {},
	"YESTERDAY":           {},
	"LAST_7_DAYS":         {},
	"LAST_14_DAYS":        {},
	"LAST_30_DAYS":        {},
	"LAST_BUSINESS_WEEK":  {},
	"LAST_WEEK_SUN_SAT":   {},
	"LAST_WEEK_MON_SUN":   {},
	"THIS_WEEK_SUN_TODAY": {},
	"THIS_WEEK_MON_TODAY": {},
	"THIS_MONTH":          {},
	"LAST_MONTH":          {},
}

const accountMetricsSelect = `SELECT metrics.cost_micros, metrics.clicks, metrics.impressions, metrics.ctr, metrics.average_cpm, metrics.conversions FROM customer`

const campaignsQuery = `SELECT campaign.id, campaign.name, campaign.status, campaign.start_date, campaign.end_date, metrics.cost_micros, metrics.clicks, metrics.impressions, metrics.ctr FROM campaign`

// DateCondition monta o filtro de período sem interpolar texto livre na consulta
func DateCondition(dateRange string, now time.Time) string {
	normalized := strings.ToUpper(strings.TrimSpace(dateRange))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	if _, ok := duringRanges[normalized]; ok {
		return "segments.date DURING " + normalized
	}

	if window, ok := utils.ResolveDateWindow(dateRange, now); ok {
		return fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'", window.Since(), window.Until())
	}

	return "segments.date DURING LAST_30_DAYS"
}

func AccountMetricsQuery(dateRange string, now time.Time) string {
	return accountMetricsSelect + " WHERE " + DateCondition(dateRange, now)
}

func CampaignsQuery() string {
	return campaignsQuery
}
