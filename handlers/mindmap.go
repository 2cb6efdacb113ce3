package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/arvindkc/mymindmap-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DBHandler struct {
	DB *gorm.DB
}

const notFoundMessage = "Mind map not found"

// emptyDoc is the default for nodes/edges when the client omits them.
var emptyDoc = datatypes.JSON("[]")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// fetchMindMap loads the record named by the {id} path value. On failure it
// writes the error response itself and returns ok=false.
func (h *DBHandler) fetchMindMap(w http.ResponseWriter, r *http.Request) (*models.MindMap, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, notFoundMessage, http.StatusNotFound)
		return nil, false
	}

	var mindMap models.MindMap
	if err := h.DB.First(&mindMap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, notFoundMessage, http.StatusNotFound)
		} else {
			http.Error(w, "Failed to fetch mind map", http.StatusInternalServerError)
		}
		return nil, false
	}
	return &mindMap, true
}

// POST /mindmaps/
func (h *DBHandler) CreateMindMap(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string         `json:"title"`
		Nodes datatypes.JSON `json:"nodes"`
		Edges datatypes.JSON `json:"edges"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	mindMap := models.MindMap{
		Title: req.Title,
		Nodes: req.Nodes,
		Edges: req.Edges,
	}
	if len(mindMap.Nodes) == 0 {
		mindMap.Nodes = emptyDoc
	}
	if len(mindMap.Edges) == 0 {
		mindMap.Edges = emptyDoc
	}

	if err := h.DB.Create(&mindMap).Error; err != nil {
		http.Error(w, "Failed to create mind map", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, mindMap)
}

// GET /mindmaps/?offset=&limit=
func (h *DBHandler) ListMindMaps(w http.ResponseWriter, r *http.Request) {
	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", 100)

	mindMaps := []models.MindMap{}
	if err := h.DB.Order("id").Offset(offset).Limit(limit).Find(&mindMaps).Error; err != nil {
		http.Error(w, "Failed to fetch mind maps", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, mindMaps)
}

// GET /mindmaps/{id}
func (h *DBHandler) GetMindMapByID(w http.ResponseWriter, r *http.Request) {
	mindMap, ok := h.fetchMindMap(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, mindMap)
}

// PATCH /mindmaps/{id}
//
// Partial update: only fields present in the body are applied. A nil
// pointer means the field was absent, so an explicit empty title or empty
// nodes list still counts as an update.
func (h *DBHandler) UpdateMindMapByID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title *string         `json:"title"`
		Nodes *datatypes.JSON `json:"nodes"`
		Edges *datatypes.JSON `json:"edges"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	mindMap, ok := h.fetchMindMap(w, r)
	if !ok {
		return
	}

	if req.Title != nil {
		mindMap.Title = *req.Title
	}
	if req.Nodes != nil {
		mindMap.Nodes = *req.Nodes
	}
	if req.Edges != nil {
		mindMap.Edges = *req.Edges
	}

	// Save refreshes updated_at even when no fields were supplied.
	if err := h.DB.Save(mindMap).Error; err != nil {
		http.Error(w, "Failed to update mind map", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, mindMap)
}

// DELETE /mindmaps/{id}
func (h *DBHandler) DeleteMindMapByID(w http.ResponseWriter, r *http.Request) {
	mindMap, ok := h.fetchMindMap(w, r)
	if !ok {
		return
	}

	if err := h.DB.Delete(mindMap).Error; err != nil {
		http.Error(w, "Failed to delete mind map", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
