package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(Submissions.WithLabelValues(ResultDuplicate))
	CountSubmission(ResultDuplicate)
	if got := testutil.ToFloat64(Submissions.WithLabelValues(ResultDuplicate)); got != before+1 {
		t.Errorf("submissions{duplicate} = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(Logins.WithLabelValues("student", ResultSuccess))
	CountLogin("student", ResultSuccess)
	if got := testutil.ToFloat64(Logins.WithLabelValues("student", ResultSuccess)); got != before+1 {
		t.Errorf("logins{student,success} = %v, want %v", got, before+1)
	}
}
