package models

import "time"

// Notebook represents a single notebook row.
// IDs are assigned by the record store at creation time and stay stable for
// the lifetime of the row, including across backup and restore.
type Notebook struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Background Background `json:"background"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Note represents a single note row. Content may itself be a serialized
// rich-text document; this layer treats it as an opaque string.
// NotebookID is nil for uncategorized notes. The reference is maintained by
// application logic, not a database foreign key: deleting a notebook nulls
// the reference on its notes instead of cascading.
type Note struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	NotebookID *int64    `json:"notebook_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
