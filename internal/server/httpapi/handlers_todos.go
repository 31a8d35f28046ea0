package httpapi

import (
	"net/http"
	"strings"

	"github.com/ishwarya-18/todo-app/internal/common"
)

type createTodoRequest struct {
	Task  string `json:"task"`
	Title string `json:"title"`
}

// text prefers task and falls back to the older title field.
func (req createTodoRequest) text() string {
	if strings.TrimSpace(req.Task) != "" {
		return req.Task
	}
	return req.Title
}

type updateTodoRequest struct {
	Completed *bool `json:"completed"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	list, err := s.tasks.List(r.Context(), p.AccountID)
	if err != nil {
		s.writeServiceError(w, r, err, "Todo not found", "Server error fetching todos")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	p := principal(r)
	task, err := s.tasks.Create(r.Context(), p.AccountID, req.text())
	if err != nil {
		s.writeServiceError(w, r, err, "User not found", "Server error creating todo")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, CodeNotFound, "Todo not found")
		return
	}

	var req updateTodoRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Completed == nil {
		s.writeServiceError(w, r, common.MissingField("Completed flag is required"), "", "")
		return
	}

	p := principal(r)
	task, err := s.tasks.SetCompleted(r.Context(), p.AccountID, id, *req.Completed)
	if err != nil {
		s.writeServiceError(w, r, err, "Todo not found", "Server error updating todo")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, CodeNotFound, "Todo not found")
		return
	}

	p := principal(r)
	if err := s.tasks.Delete(r.Context(), p.AccountID, id); err != nil {
		s.writeServiceError(w, r, err, "Todo not found", "Server error deleting todo")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Todo deleted successfully"})
}
