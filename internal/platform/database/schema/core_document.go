package schema

// CoreDocumentTable represents the 'core.document' table
type CoreDocumentTable struct {
	Table        string
	ID           string
	AccountID    string
	Kind         string
	Title        string
	Subtitle     string
	Bodytext     string
	Status       string
	PublishedAt  string
	SectionID    string
	Tags         string
	Delta        string
	SearchVector string
	CreatedAt    string
	UpdatedAt    string
}

// CoreDocument is the schema definition for core.document
var CoreDocument = CoreDocumentTable{
	Table:        "core.document",
	ID:           "id",
	AccountID:    "accountid",
	Kind:         "kind",
	Title:        "title",
	Subtitle:     "subtitle",
	Bodytext:     "bodytext",
	Status:       "status",
	PublishedAt:  "publishedat",
	SectionID:    "sectionid",
	Tags:         "tags",
	Delta:        "delta",
	SearchVector: "searchvector",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns the columns hydrated into a Document, in scan order.
func (t CoreDocumentTable) Columns() []string {
	return []string{
		t.ID, t.AccountID, t.Kind, t.Title, t.Subtitle, t.Bodytext, t.Status,
		t.PublishedAt, t.SectionID, t.Tags, t.CreatedAt, t.UpdatedAt,
	}
}
