package models

import (
	"time"

	"gorm.io/datatypes"
)

// MindMap is the sole persisted resource: a title plus two opaque JSON
// documents describing the map's nodes and edges. Nodes and edges are
// stored as-is; the server never inspects their structure.
type MindMap struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null;size:200" json:"title"`
	Nodes     datatypes.JSON `json:"nodes"`
	Edges     datatypes.JSON `json:"edges"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
