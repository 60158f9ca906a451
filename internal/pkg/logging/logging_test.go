package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/ferdiebergado/regtoken/internal/pkg/logging"
)

func TestContextHandler(t *testing.T) {
	t.Parallel()

	const id = "7d444840-9dc0-11d1-b245-5ffdce74fad2"

	var buf bytes.Buffer
	logger := slog.New(&logging.ContextHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := logging.NewContextWithRequestID(context.Background(), id)
	logger.With("component", "test").InfoContext(ctx, "token rejected")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatal(err)
	}

	if got := record["request_id"]; got != id {
		t.Errorf("record[%q] = %v, want: %v", "request_id", got, id)
	}

	if got := record["component"]; got != "test" {
		t.Errorf("record[%q] = %v, want: %v", "component", got, "test")
	}
}

func TestContextHandler_NoRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(&logging.ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})
	logger.InfoContext(context.Background(), "token issued")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("log = %q, want no request_id", buf.String())
	}
}
