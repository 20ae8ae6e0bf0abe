package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/msomdec/content-api/internal/domain"
)

// ContentService is the content capability the transport depends on.
type ContentService interface {
	Create(ctx context.Context, content domain.Content) (*domain.Content, error)
	Find(ctx context.Context, id int64) (*domain.Content, error)
}

// ContentHandler handles content HTTP requests.
type ContentHandler struct {
	contents ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contents ContentService) *ContentHandler {
	return &ContentHandler{contents: contents}
}

// HandleCreate stores a new content record.
// POST /service/contents/post
// Request:  {"title":"...","body":"..."}
// Response: the stored record
func (h *ContentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	content, err := h.contents.Create(r.Context(), domain.NewContent(req.Title, req.Body))
	if err != nil {
		writeInternalError(w, r, "create content", err)
		return
	}

	writeJSON(w, http.StatusOK, toContentDTO(content))
}

// HandleFind returns one content record.
// GET /service/contents/find/{id}
// Response: the record, or 404 when no record has that id
func (h *ContentHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid content id.")
		return
	}

	content, err := h.contents.Find(r.Context(), id)
	if err != nil {
		writeInternalError(w, r, "find content", err)
		return
	}
	if content == nil {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}

	writeJSON(w, http.StatusOK, toContentDTO(content))
}
