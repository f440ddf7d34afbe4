package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment so aggregation context
// (vehicle_id, stage, source) is included in every log statement without
// touching call sites.
type LogFields struct {
	RequestID *int64  // per-request snowflake id
	VehicleID *int64  // vehicle being aggregated
	Stage     *string // aggregation stage (fetching, normalizing, merging, ...)
	Source    *string // source repository currently involved
	Component string  // component name, e.g. "timeline.orchestrator"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.VehicleID != nil {
		result.VehicleID = next.VehicleID
	}
	if next.Stage != nil {
		result.Stage = next.Stage
	}
	if next.Source != nil {
		result.Source = next.Source
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{VehicleID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
