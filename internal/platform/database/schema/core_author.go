package schema

// CoreAuthorTable represents the 'core.author' table
type CoreAuthorTable struct {
	Table     string
	ID        string
	AccountID string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// CoreAuthor is the schema definition for core.author
var CoreAuthor = CoreAuthorTable{
	Table:     "core.author",
	ID:        "id",
	AccountID: "accountid",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
