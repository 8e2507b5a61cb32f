package models

import "encoding/json"

// Post is a post of the public placeholder API.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// PlaceholderUser is a user object of the placeholder API, passed through
// untouched.
type PlaceholderUser = json.RawMessage

// UploadedFile describes a file accepted by POST /api/files.
type UploadedFile struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}
