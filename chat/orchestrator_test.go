package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amonks/focusstudio/task"
	"github.com/amonks/focusstudio/template"
)

func testStores(t *testing.T) (*task.Store, *template.Store) {
	t.Helper()
	dir := t.TempDir()
	return task.Open(dir), template.Open(dir)
}

// replyServer streams back the configured reply and captures the
// request body for inspection.
func replyServer(t *testing.T, reply string, captured *completionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		fmt.Fprint(w, sseChunk(reply))
		fmt.Fprint(w, "data: [DONE]\n")
	}))
}

func TestSendStripsCommandsAndMutates(t *testing.T) {
	tasks, templates := testStores(t)
	existing := task.New("write report", time.Now(), task.CreateOptions{})
	if err := tasks.Add(existing); err != nil {
		t.Fatal(err)
	}

	reply := "Moving that now.\n/move " + existing.ID + " done\nAll set."
	server := replyServer(t, reply, nil)
	defer server.Close()

	o := NewOrchestrator(newTestClient(server.URL), tasks, templates)
	got := o.Send(context.Background(), "finish my report", nil)

	if got != "Moving that now.\nAll set." {
		t.Errorf("Send() = %q", got)
	}
	moved, _ := tasks.Get(existing.ID)
	if moved.Status != task.ColumnDone {
		t.Errorf("status = %q, want done", moved.Status)
	}

	history := o.History()
	last := history[len(history)-1]
	if last.Role != RoleAssistant || strings.Contains(last.Content, "/move") {
		t.Errorf("history must hold the stripped text: %+v", last)
	}
}

func TestSendIncludesBoardContext(t *testing.T) {
	tasks, templates := testStores(t)
	existing := task.New("water plants", time.Now(), task.CreateOptions{Priority: task.PriorityNormal, Status: task.ColumnNow})
	if err := tasks.Add(existing); err != nil {
		t.Fatal(err)
	}

	var captured completionRequest
	server := replyServer(t, "ok", &captured)
	defer server.Close()

	o := NewOrchestrator(newTestClient(server.URL), tasks, templates)
	o.Send(context.Background(), "what's on my plate?", nil)

	if len(captured.Messages) < 3 {
		t.Fatalf("got %d messages, want system + greeting + user", len(captured.Messages))
	}
	system := captured.Messages[0]
	if system.Role != RoleSystem {
		t.Errorf("first message role = %q, want system", system.Role)
	}
	wantLine := existing.ID + ": water plants [P2] (now)"
	if !strings.Contains(system.Content, wantLine) {
		t.Errorf("context block missing task line %q:\n%s", wantLine, system.Content)
	}
	if captured.Messages[len(captured.Messages)-1].Content != "what's on my plate?" {
		t.Error("user input should be the final message")
	}
	if !captured.Stream {
		t.Error("request should ask for streaming")
	}
}

func TestSendFailureSubstitutesFixedMessage(t *testing.T) {
	tasks, templates := testStores(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	o := NewOrchestrator(newTestClient(server.URL), tasks, templates)
	got := o.Send(context.Background(), "hello?", nil)

	if got != FailureMessage {
		t.Errorf("Send() = %q, want %q", got, FailureMessage)
	}

	history := o.History()
	if history[len(history)-1].Content != FailureMessage {
		t.Error("failure message should be recorded in history")
	}
	// The conversation keeps working on the next turn.
	if history[len(history)-2].Content != "hello?" {
		t.Error("user turn should stay in history after a failure")
	}
}

func TestSendStreamsDeltas(t *testing.T) {
	tasks, templates := testStores(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		fmt.Fprint(w, sseChunk("token "))
		flusher.Flush()
		fmt.Fprint(w, sseChunk("by token"))
		flusher.Flush()
		fmt.Fprint(w, "data: [DONE]\n")
	}))
	defer server.Close()

	o := NewOrchestrator(newTestClient(server.URL), tasks, templates)

	var streamed strings.Builder
	got := o.Send(context.Background(), "stream please", func(d string) {
		streamed.WriteString(d)
	})

	if got != "token by token" {
		t.Errorf("Send() = %q", got)
	}
	if streamed.String() != "token by token" {
		t.Errorf("deltas = %q", streamed.String())
	}
}

func TestHistoryStartsWithGreeting(t *testing.T) {
	tasks, templates := testStores(t)
	o := NewOrchestrator(newTestClient("http://unused"), tasks, templates)

	history := o.History()
	if len(history) != 1 || history[0].Role != RoleAssistant || history[0].Content != Greeting {
		t.Errorf("history = %+v", history)
	}
}
