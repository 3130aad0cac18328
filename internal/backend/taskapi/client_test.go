package taskapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rtask/internal/backend/taskapi"
	"rtask/internal/config"
	"rtask/internal/service"
)

func newClient(baseURL string) *taskapi.Client {
	return taskapi.New(&config.Config{BaseURL: baseURL})
}

func TestClient_ListTasks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/tasks" {
			t.Errorf("expected path /tasks, got %s", r.URL.Path)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("expected Accept application/json, got %q", accept)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"title":"Buy milk","is_completed":false},{"id":2,"title":"Buy eggs","is_completed":true}]`)
	}))
	defer srv.Close()

	tasks, err := newClient(srv.URL).ListTasks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[0].Title != "Buy milk" || tasks[0].IsCompleted {
		t.Errorf("unexpected tasks[0]: %#v", tasks[0])
	}
	if tasks[1].ID != 2 || !tasks[1].IsCompleted {
		t.Errorf("unexpected tasks[1]: %#v", tasks[1])
	}
}

func TestClient_CreateTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/tasks" {
			t.Errorf("expected path /tasks, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"title":"Buy milk"}` {
			t.Errorf("unexpected request body: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":7,"title":"Buy milk","is_completed":false}`)
	}))
	defer srv.Close()

	task, err := newClient(srv.URL).CreateTask(context.Background(), "Buy milk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 7 {
		t.Errorf("expected ID 7, got %d", task.ID)
	}
	if task.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %q", task.Title)
	}
	if task.IsCompleted {
		t.Error("expected IsCompleted false")
	}
}

func TestClient_UpdateTask_TitleOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/tasks/3" {
			t.Errorf("expected path /tasks/3, got %s", r.URL.Path)
		}
		// Untouched fields must stay off the wire entirely.
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"title":"New title"}` {
			t.Errorf("unexpected request body: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":3,"title":"New title","is_completed":true}`)
	}))
	defer srv.Close()

	title := "New title"
	task, err := newClient(srv.URL).UpdateTask(context.Background(), 3, service.TaskPatch{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 3 || task.Title != "New title" || !task.IsCompleted {
		t.Errorf("unexpected task: %#v", task)
	}
}

func TestClient_UpdateTask_CompletedOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"is_completed":true}` {
			t.Errorf("unexpected request body: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":4,"title":"Old title","is_completed":true}`)
	}))
	defer srv.Close()

	completed := true
	task, err := newClient(srv.URL).UpdateTask(context.Background(), 4, service.TaskPatch{IsCompleted: &completed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "Old title" || !task.IsCompleted {
		t.Errorf("unexpected task: %#v", task)
	}
}

func TestClient_ToggleTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/tasks/2/toggle" {
			t.Errorf("expected path /tasks/2/toggle, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":2,"title":"Buy eggs","is_completed":true}`)
	}))
	defer srv.Close()

	task, err := newClient(srv.URL).ToggleTask(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != 2 || !task.IsCompleted {
		t.Errorf("unexpected task: %#v", task)
	}
}

func TestClient_DeleteTask_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/tasks/5" {
			t.Errorf("expected path /tasks/5, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newClient(srv.URL).DeleteTask(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"task not found"}`)
	}))
	defer srv.Close()

	title := "New title"
	_, err := newClient(srv.URL).UpdateTask(context.Background(), 3, service.TaskPatch{Title: &title})
	if err == nil {
		t.Fatal("expected error")
	}

	expected := "PUT /tasks/3 failed (404). Unexpected response from server."
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	var apiErr *taskapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Method != "PUT" || apiErr.Path != "/tasks/3" || apiErr.Status != 404 {
		t.Errorf("unexpected error fields: %#v", apiErr)
	}
}

func TestClient_HTMLOnSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, "<!DOCTYPE html><html><body>app</body></html>")
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	expected := "Unexpected non-JSON response for GET /tasks. Check API base URL configuration."
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestClient_HTMLOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "<!DOCTYPE html><html><head><title>404</title></head></html>")
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	expected := "GET /tasks failed (404). Received HTML instead of JSON. Check API base URL configuration."
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestClient_NoRetry(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"boom"}`)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if requests != 1 {
		t.Errorf("expected exactly 1 request, got %d", requests)
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	_, err := newClient(baseURL).ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	// Transport failures pass through without classification.
	var apiErr *taskapi.APIError
	if errors.As(err, &apiErr) {
		t.Errorf("expected unclassified transport error, got %v", apiErr)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(srv.URL).ListTasks(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}
