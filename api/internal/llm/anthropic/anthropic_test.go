package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

func reply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	return string(b)
}

func newTestEngine(t *testing.T, handler http.HandlerFunc) *Engine {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	e := New("test-key", "claude-3-haiku-20240307")
	e.APIURL = srv.URL
	return e
}

func TestExtract_SendsHeadersAndParsesEmbeddedJSON(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("x-api-key=%q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") != "2023-06-01" {
			t.Errorf("anthropic-version=%q", r.Header.Get("anthropic-version"))
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type=%q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(reply("Here is the schedule:\n" +
			`{"employee_name":"Jane Doe","schedule":[{"day":"Monday","location":"Store 4","hours":"9:00 AM - 5:00 PM"}]}` +
			"\nHope that helps!")))
	})

	d, err := e.Extract(context.Background(), jpegHeader)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if d.EmployeeName != "Jane Doe" {
		t.Fatalf("employee_name=%q", d.EmployeeName)
	}
	if len(d.Schedule) != 1 || d.Schedule[0].Hours != "9:00 AM - 5:00 PM" {
		t.Fatalf("schedule=%+v", d.Schedule)
	}

	if gotBody["model"] != "claude-3-haiku-20240307" {
		t.Errorf("model=%v", gotBody["model"])
	}
	if gotBody["max_tokens"].(float64) != 1024 {
		t.Errorf("max_tokens=%v", gotBody["max_tokens"])
	}
	msgs := gotBody["messages"].([]any)
	content := msgs[0].(map[string]any)["content"].([]any)
	if len(content) != 2 {
		t.Fatalf("content blocks=%d, want text+image", len(content))
	}
	img := content[1].(map[string]any)
	src := img["source"].(map[string]any)
	if src["type"] != "base64" || src["media_type"] != "image/jpeg" {
		t.Errorf("image source=%v", src)
	}
}

func TestExtract_NoJSONInReply(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(reply("I cannot read this image, sorry.")))
	})
	if _, err := e.Extract(context.Background(), jpegHeader); err == nil {
		t.Fatal("want parse error when reply has no JSON object")
	}
}

func TestExtract_Non200IsError(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	})
	if _, err := e.Extract(context.Background(), jpegHeader); err == nil {
		t.Fatal("want error on 503")
	}
}

func TestExtract_EmptyKey(t *testing.T) {
	t.Parallel()

	e := New("", "claude-3-haiku-20240307")
	if _, err := e.Extract(context.Background(), jpegHeader); err == nil {
		t.Fatal("want error for empty API key")
	}
}

func TestSummarize_TextOnlyBodyAndParse(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(reply(`{"total_hours": 40, "summary": "Full week at Store 4."}`)))
	})

	a, err := e.Summarize(context.Background(), scheduleFixture())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if a.TotalHours != 40 || a.Summary != "Full week at Store 4." {
		t.Fatalf("analysis=%+v", a)
	}

	msgs := gotBody["messages"].([]any)
	content := msgs[0].(map[string]any)["content"].([]any)
	if len(content) != 1 {
		t.Fatalf("content blocks=%d, want text only", len(content))
	}
}

func TestSummarize_EmptyContentArray(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content": []}`))
	})
	if _, err := e.Summarize(context.Background(), scheduleFixture()); err == nil {
		t.Fatal("want error for empty content array")
	}
}
