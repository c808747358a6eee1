package model

import "encoding/json"

// Candidate is one ranked search result from the catalog.
type Candidate struct {
	Title           string `json:"title"`
	ForeignBookID   string `json:"foreignBookId"`
	ForeignAuthorID string `json:"foreignAuthorId,omitempty"`
	AuthorName      string `json:"authorName,omitempty"`
}

// MetadataProfile is a catalog metadata profile.
type MetadataProfile struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// AddBookSpec is everything the catalog needs to add and monitor a book.
type AddBookSpec struct {
	Title             string
	ForeignBookID     int64
	ForeignAuthorID   int64
	RootFolderPath    string
	QualityProfileID  int32
	MetadataProfileID int32
	Tags              []int32
	SearchNow         bool
}

// AddedBook is the catalog's identity for a book it now monitors.
// Raw holds the catalog response verbatim.
type AddedBook struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Monitored bool            `json:"monitored"`
	Raw       json.RawMessage `json:"-"`
}
