package warehouse

import (
	"fmt"
	"time"
)

// Flux builders for the three dashboard queries. Field columns are pivoted so
// every record carries a full row keyed by the wire field names.

func latestQuery(bucket, measurement string) string {
	return fmt.Sprintf(`from(bucket: %q)
	|> range(start: 0)
	|> filter(fn: (r) => r["_measurement"] == %q)
	|> pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")
	|> sort(columns: ["_time"], desc: true)
	|> limit(n: 1)`, bucket, measurement)
}

func sinceQuery(bucket, measurement string, cutoff time.Time) string {
	return fmt.Sprintf(`from(bucket: %q)
	|> range(start: %s)
	|> filter(fn: (r) => r["_measurement"] == %q)
	|> pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")
	|> sort(columns: ["_time"])`, bucket, cutoff.UTC().Format(time.RFC3339), measurement)
}

func recentQuery(bucket, measurement string, limit int) string {
	return fmt.Sprintf(`from(bucket: %q)
	|> range(start: 0)
	|> filter(fn: (r) => r["_measurement"] == %q)
	|> pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")
	|> sort(columns: ["_time"], desc: true)
	|> limit(n: %d)`, bucket, measurement, limit)
}
