package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/atikulmunna/logtally/internal/aggregator"
	"github.com/atikulmunna/logtally/internal/model"
)

var sample = []model.LogRecord{
	{Date: "2024-01-22", Time: "08:30:01", Level: "INFO", Message: "System started"},
	{Date: "2024-01-22", Time: "08:30:05", Level: "ERROR", Message: "Failed to connect to the database"},
	{Date: "2024-01-22", Time: "08:30:10", Level: "INFO", Message: "Reconnected"},
}

func TestTextRendererCounts(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	if err := r.RenderCounts(aggregator.Aggregate(sample)); err != nil {
		t.Fatal(err)
	}

	want := "Level      | Count\n" +
		"------------------\n" +
		"INFO       | 2    \n" +
		"ERROR      | 1    \n"
	if buf.String() != want {
		t.Errorf("unexpected table:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestTextRendererCountsEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	if err := r.RenderCounts(aggregator.Aggregate(nil)); err != nil {
		t.Fatal(err)
	}

	want := "Level      | Count\n------------------\n"
	if buf.String() != want {
		t.Errorf("expected header and separator only, got %q", buf.String())
	}
}

func TestTextRendererLongLevelOverflows(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	recs := []model.LogRecord{{Date: "2024-01-22", Time: "08:30:01", Level: "VERYLONGLEVEL", Message: "x"}}
	if err := r.RenderCounts(aggregator.Aggregate(recs)); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "VERYLONGLEVEL | 1    \n") {
		t.Errorf("expected long level to overflow its column, got %q", buf.String())
	}
}

func TestTextRendererDetails(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	infos := []model.LogRecord{sample[0], sample[2]}
	if err := r.RenderDetails("INFO", infos); err != nil {
		t.Fatal(err)
	}

	want := "Details for log level 'INFO':\n" +
		"2024-01-22 08:30:01 - System started\n" +
		"2024-01-22 08:30:10 - Reconnected\n"
	if buf.String() != want {
		t.Errorf("unexpected details:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestTextRendererDetailsEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	if err := r.RenderDetails("DEBUG", nil); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "Details for log level 'DEBUG':\n" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}

func TestTextRendererColorKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, true)

	if err := r.RenderCounts(aggregator.Aggregate(sample)); err != nil {
		t.Fatal(err)
	}
	if err := r.RenderDetails("ERROR", sample[1:2]); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Level      | Count", "INFO", "ERROR", "Details for log level 'ERROR':", "Failed to connect to the database"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestJSONRendererCounts(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.RenderCounts(aggregator.Aggregate(sample)); err != nil {
		t.Fatal(err)
	}

	want := `{"total":3,"counts":[{"level":"INFO","count":2},{"level":"ERROR","count":1}]}` + "\n"
	if buf.String() != want {
		t.Errorf("expected %s, got %s", want, buf.String())
	}
}

func TestJSONRendererDetails(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.RenderDetails("ERROR", sample[1:2]); err != nil {
		t.Fatal(err)
	}

	var got DetailsReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, buf.String())
	}
	if got.Level != "ERROR" {
		t.Errorf("expected level ERROR, got %s", got.Level)
	}
	if len(got.Records) != 1 || got.Records[0] != sample[1] {
		t.Errorf("unexpected records: %+v", got.Records)
	}
}

func TestJSONRendererDetailsEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.RenderDetails("FATAL", nil); err != nil {
		t.Fatal(err)
	}

	want := `{"level":"FATAL","records":[]}` + "\n"
	if buf.String() != want {
		t.Errorf("expected %s, got %s", want, buf.String())
	}
}
