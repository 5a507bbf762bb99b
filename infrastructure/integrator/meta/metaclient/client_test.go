package metaclient

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-media-os-api/infrastructure/integrator/vendorhttp"
	"github.com/vfg2006/social-media-os-api/internal/config"
)

func newTestClient(t *testing.T, status int, body string) (Client, *url.Values) {
	t.Helper()

	query := &url.Values{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*query = r.URL.Query()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Vendors.GraphURL = server.URL

	return NewClient(cfg, vendorhttp.New(time.Second)), query
}

func TestPeriodParams(t *testing.T) {
	now := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		dateRange  string
		wantPreset string
		wantRange  string
	}{
		{name: "Preset em maiúsculas", dateRange: "LAST_30_DAYS", wantPreset: "last_30d"},
		{name: "Ontem", dateRange: "yesterday", wantPreset: "yesterday"},
		{name: "Janela relativa sem preset", dateRange: "last_45_days", wantRange: `{"since":"2024-02-15","until":"2024-03-31"}`},
		{name: "Intervalo explícito", dateRange: "2024-03-01..2024-03-15", wantRange: `{"since":"2024-03-01","until":"2024-03-15"}`},
		{name: "Rótulo desconhecido cai no padrão", dateRange: "SOMETHING_ELSE", wantPreset: "last_30d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := PeriodParams(tt.dateRange, now)
			assert.Equal(t, tt.wantPreset, params.Get("date_preset"))
			assert.Equal(t, tt.wantRange, params.Get("time_range"))
		})
	}
}

func TestMetaClient_GetAdAccountInsights(t *testing.T) {
	t.Run("Valores em string e conversões em lista de ações", func(t *testing.T) {
		client, query := newTestClient(t, http.StatusOK, `{"data":[{
			"account_id":"998877","spend":"150.75","clicks":"320","impressions":"12000",
			"ctr":"2.666667","cpm":"12.5625",
			"conversions":[{"action_type":"purchase","value":"10"},{"action_type":"lead","value":"4"}]
		}]}`)

		insight, err := client.GetAdAccountInsights(t.Context(), "998877", "meta-token", "LAST_7_DAYS")

		require.NoError(t, err)
		assert.Equal(t, 150.75, insight.Spend.Float())
		assert.Equal(t, int64(320), insight.Clicks.Int())
		assert.Equal(t, float64(14), float64(insight.Conversions))
		assert.Equal(t, "last_7d", query.Get("date_preset"))
		assert.Equal(t, "meta-token", query.Get("access_token"))
	})

	t.Run("Sem entrega no período retorna linha zerada", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"data":[]}`)

		insight, err := client.GetAdAccountInsights(t.Context(), "998877", "meta-token", "LAST_30_DAYS")

		require.NoError(t, err)
		assert.Zero(t, insight.Spend.Float())
	})

	t.Run("Código 190 vira ErrTokenExpired", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusBadRequest, `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`)

		_, err := client.GetAdAccountInsights(t.Context(), "998877", "meta-token", "LAST_30_DAYS")

		assert.True(t, errors.Is(err, ErrTokenExpired))
	})

	t.Run("Outras rejeições mantêm a mensagem da plataforma", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusBadRequest, `{"error":{"message":"(#100) Invalid parameter","type":"OAuthException","code":100}}`)

		_, err := client.GetAdAccountInsights(t.Context(), "998877", "meta-token", "LAST_30_DAYS")

		require.Error(t, err)
		assert.True(t, vendorhttp.IsVendorRejection(err))
		assert.Equal(t, "(#100) Invalid parameter", err.Error())
	})
}

func TestMetaClient_GetAdCampaigns(t *testing.T) {
	client, query := newTestClient(t, http.StatusOK, `{"data":[{"id":"c1","name":"Black Friday","status":"ACTIVE","insights":{"data":[{"spend":"80.5","clicks":"100","impressions":"4000","ctr":"2.5"}]}}]}`)

	campaigns, err := client.GetAdCampaigns(t.Context(), "998877", "meta-token")

	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, 80.5, campaigns[0].Insight().Spend.Float())
	assert.Contains(t, query.Get("fields"), "insights{spend,clicks,impressions,ctr}")
}
