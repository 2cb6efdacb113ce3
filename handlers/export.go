package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// quoteSQL renders a value as a single-quoted SQL string literal, doubling
// embedded single quotes. Deliberately naive: the export is a convenience
// dump, not a general SQL encoder.
func quoteSQL(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// GET /mindmaps/{id}/export/sql
//
// Serializes one record as a plain-text INSERT statement, returned as a
// downloadable attachment.
func (h *DBHandler) ExportMindMapSQL(w http.ResponseWriter, r *http.Request) {
	mindMap, ok := h.fetchMindMap(w, r)
	if !ok {
		return
	}

	var sql strings.Builder
	fmt.Fprintf(&sql, "-- MyMindMap Export: \"%s\"\n", mindMap.Title)
	fmt.Fprintf(&sql, "-- Generated at: %s\n", time.Now().UTC().Format(time.RFC3339))
	sql.WriteString("INSERT INTO mindmap (title, nodes, edges, created_at, updated_at)\n")
	sql.WriteString("VALUES (\n")
	fmt.Fprintf(&sql, "    %s,\n", quoteSQL(mindMap.Title))
	fmt.Fprintf(&sql, "    %s,\n", quoteSQL(string(mindMap.Nodes)))
	fmt.Fprintf(&sql, "    %s,\n", quoteSQL(string(mindMap.Edges)))
	fmt.Fprintf(&sql, "    %s,\n", quoteSQL(mindMap.CreatedAt.Format(time.RFC3339)))
	fmt.Fprintf(&sql, "    %s\n", quoteSQL(mindMap.UpdatedAt.Format(time.RFC3339)))
	sql.WriteString(");")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=mindmap-%d.sql", mindMap.ID))
	w.Write([]byte(sql.String()))
}
