package schema

// CoreAuthorshipTable represents the 'core.authorship' table
type CoreAuthorshipTable struct {
	Table         string
	ID            string
	AccountID     string
	DocumentID    string
	AuthorID      string
	StaffPosition string
	Position      string
	CreatedAt     string
}

// CoreAuthorship is the schema definition for core.authorship
var CoreAuthorship = CoreAuthorshipTable{
	Table:         "core.authorship",
	ID:            "id",
	AccountID:     "accountid",
	DocumentID:    "documentid",
	AuthorID:      "authorid",
	StaffPosition: "staffposition",
	Position:      "position",
	CreatedAt:     "createdat",
}
