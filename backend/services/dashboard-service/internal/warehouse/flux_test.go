package warehouse

import (
	"strings"
	"testing"
	"time"
)

func TestLatestQuery(t *testing.T) {
	q := latestQuery("airsense", "sensor_readings")

	for _, fragment := range []string{
		`from(bucket: "airsense")`,
		`range(start: 0)`,
		`r["_measurement"] == "sensor_readings"`,
		`pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")`,
		`sort(columns: ["_time"], desc: true)`,
		`limit(n: 1)`,
	} {
		if !strings.Contains(q, fragment) {
			t.Errorf("latest query missing %q:\n%s", fragment, q)
		}
	}
}

func TestSinceQueryEmbedsCutoff(t *testing.T) {
	cutoff := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q := sinceQuery("airsense", "sensor_readings", cutoff)

	if !strings.Contains(q, "range(start: 2025-06-01T12:00:00Z)") {
		t.Errorf("since query missing rfc3339 cutoff:\n%s", q)
	}
	if strings.Contains(q, "limit(") {
		t.Errorf("since query should not limit rows:\n%s", q)
	}
}

func TestSinceQueryNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	cutoff := time.Date(2025, 6, 1, 14, 0, 0, 0, loc)
	q := sinceQuery("airsense", "sensor_readings", cutoff)

	if !strings.Contains(q, "range(start: 2025-06-01T12:00:00Z)") {
		t.Errorf("since query should embed the UTC instant:\n%s", q)
	}
}

func TestRecentQueryEmbedsLimit(t *testing.T) {
	q := recentQuery("airsense", "sensor_readings", 25)

	if !strings.Contains(q, "limit(n: 25)") {
		t.Errorf("recent query missing limit:\n%s", q)
	}
	if !strings.Contains(q, `sort(columns: ["_time"], desc: true)`) {
		t.Errorf("recent query must sort newest first:\n%s", q)
	}
}
