// Package taskapi implements the service.Service interface against the
// remote task REST API.
package taskapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"rtask/internal/config"
	"rtask/internal/service"
)

// Client implements service.Service over the task REST API.
//
// The client holds no mutable state beyond the base URL fixed at
// construction. It never retries and imposes no timeout of its own;
// cancellation and deadlines belong to the caller's context.
type Client struct {
	http *resty.Client
}

// New creates a task API client for the configured base URL.
// The base URL has been resolved and validated by the config layer.
func New(cfg *config.Config) *Client {
	hc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetDoNotParseResponse(true)
	hc.JSONMarshal = sonic.ConfigStd.Marshal
	hc.JSONUnmarshal = sonic.ConfigStd.Unmarshal
	if cfg.Debug {
		hc.SetDebug(true)
	}
	return &Client{http: hc}
}

// createTaskRequest is the body for CreateTask.
type createTaskRequest struct {
	Title string `json:"title"`
}

// ListTasks returns every task in API order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a new task and returns the server's full representation.
func (c *Client) CreateTask(ctx context.Context, title string) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPost, "/tasks", createTaskRequest{Title: title}, &task)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a partial patch and returns the full updated task.
func (c *Client) UpdateTask(ctx context.Context, id int64, patch service.TaskPatch) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPut, taskPath(id), patch, &task)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// ToggleTask flips a task's completion flag and returns the full updated task.
func (c *Client) ToggleTask(ctx context.Context, id int64) (service.Task, error) {
	var task service.Task
	err := c.do(ctx, http.MethodPost, taskPath(id)+"/toggle", nil, &task)
	if err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// DeleteTask deletes a task. The response body is ignored on success.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id int64) string {
	return fmt.Sprintf("/tasks/%d", id)
}

// do issues one API request and routes the response through decodeResponse.
// Transport-level failures (network unreachable, cancelled context) are
// returned as-is; everything that produced a response is classified.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	status := resp.StatusCode()
	if err := decodeResponse(method, path, status, resp.Header().Get("Content-Type"), readBody(resp), out); err != nil {
		log.WithFields(log.Fields{
			"method": method,
			"path":   path,
			"status": status,
		}).Debug("api response rejected")
		return err
	}

	log.WithFields(log.Fields{
		"method": method,
		"path":   path,
		"status": status,
	}).Debug("api request completed")
	return nil
}

// readBody drains the raw response body. Reading is best-effort: a read
// failure degrades to an empty body so classification can still proceed on
// the status line alone.
func readBody(resp *resty.Response) []byte {
	rc := resp.RawBody()
	if rc == nil {
		return nil
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil
	}
	return b
}
