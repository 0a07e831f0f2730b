package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/users/", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/users/", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/users/", "201", 0.1)
	RecordHTTPRequest("POST", "/api/users/", "201", 0.2)
	RecordHTTPRequest("POST", "/api/users/", "400", 0.05)

	created := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/users/", "201"))
	rejected := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/users/", "400"))
	assert.Equal(t, float64(2), created)
	assert.Equal(t, float64(1), rejected)
}

func TestRecordUserCounters(t *testing.T) {
	before := testutil.ToFloat64(UsersCreatedTotal)
	RecordUserCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(UsersCreatedTotal))

	before = testutil.ToFloat64(UsersDeletedTotal)
	RecordUserDeleted()
	assert.Equal(t, before+1, testutil.ToFloat64(UsersDeletedTotal))
}

func TestRecordUserLookup(t *testing.T) {
	UserLookupsTotal.Reset()

	RecordUserLookup(true)
	RecordUserLookup(false)
	RecordUserLookup(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(UserLookupsTotal.WithLabelValues("found")))
	assert.Equal(t, float64(2), testutil.ToFloat64(UserLookupsTotal.WithLabelValues("not_found")))
}
