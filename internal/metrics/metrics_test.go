package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesCounters(t *testing.T) {
	Submissions.WithLabelValues("single").Inc()
	Decisions.WithLabelValues("decide_submission", "applied").Inc()

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "groupmart_submissions_total")
	assert.Contains(t, string(body), "groupmart_decisions_total")
}

func TestCredited_Accumulates(t *testing.T) {
	before := testutil.ToFloat64(Credited)
	Credited.Add(6)
	assert.InDelta(t, before+6, testutil.ToFloat64(Credited), 1e-9)
}
