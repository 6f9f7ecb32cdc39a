package logging

import (
	"fmt"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context format: {version}-{trace-id}-{parent-id}-{trace-flags}
// Example: 00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01
var traceHeaderRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

var (
	projectMu sync.RWMutex
	projectID string
)

// SetProjectID sets the Google Cloud project used to build trace resource names.
// An empty value disables trace correlation fields.
func SetProjectID(id string) {
	projectMu.Lock()
	defer projectMu.Unlock()
	projectID = id
}

func currentProjectID() string {
	projectMu.RLock()
	defer projectMu.RUnlock()
	return projectID
}

func loggerWithTrace(base *zap.Logger, header, project, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(header, project)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func traceFields(header, project string) []zap.Field {
	if project == "" {
		return nil
	}
	matches := traceHeaderRe.FindStringSubmatch(header)
	if len(matches) != 5 {
		return nil
	}
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", fmt.Sprintf("projects/%s/traces/%s", project, matches[2])),
		zap.String("logging.googleapis.com/spanId", matches[3]),
		zap.Bool("logging.googleapis.com/trace_sampled", matches[4] == "01"),
	}
}

func traceResource(header, project string) string {
	if project == "" {
		return ""
	}
	matches := traceHeaderRe.FindStringSubmatch(header)
	if len(matches) != 5 {
		return ""
	}
	return fmt.Sprintf("projects/%s/traces/%s", project, matches[2])
}
