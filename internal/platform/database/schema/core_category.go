package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table     string
	ID        string
	AccountID string
	Name      string
	Slug      string
	CreatedAt string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:     "core.category",
	ID:        "id",
	AccountID: "accountid",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}

// CoreSortingTable represents the 'core.sorting' join table
type CoreSortingTable struct {
	Table      string
	AccountID  string
	DocumentID string
	CategoryID string
	CreatedAt  string
}

// CoreSorting is the schema definition for core.sorting
var CoreSorting = CoreSortingTable{
	Table:      "core.sorting",
	AccountID:  "accountid",
	DocumentID: "documentid",
	CategoryID: "categoryid",
	CreatedAt:  "createdat",
}
