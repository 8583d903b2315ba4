package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns the value of the series of family name whose labels match.
func sample(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return 0
}

func TestRecordHTTPRequest(t *testing.T) {
	labels := map[string]string{"method": "GET", "route": "/equipos", "status": "200"}
	before := sample(t, "labmaint_http_requests_total", labels)

	RecordHTTPRequest("GET", "/equipos", 200, 15*time.Millisecond)
	RecordHTTPRequest("GET", "/equipos", 200, 5*time.Millisecond)

	assert.Equal(t, before+2, sample(t, "labmaint_http_requests_total", labels))
	assert.GreaterOrEqual(t, sample(t, "labmaint_http_request_duration_seconds",
		map[string]string{"method": "GET", "route": "/equipos"}), float64(2))
}

func TestTrackInFlight(t *testing.T) {
	before := sample(t, "labmaint_http_requests_in_flight", nil)

	TrackInFlight(true)
	assert.Equal(t, before+1, sample(t, "labmaint_http_requests_in_flight", nil))

	TrackInFlight(false)
	assert.Equal(t, before, sample(t, "labmaint_http_requests_in_flight", nil))
}

func TestRecordLogin(t *testing.T) {
	before := sample(t, "labmaint_login_attempts_total", map[string]string{"result": LoginInvalid})

	RecordLogin(LoginInvalid)

	assert.Equal(t, before+1, sample(t, "labmaint_login_attempts_total", map[string]string{"result": LoginInvalid}))
}
