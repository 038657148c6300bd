package schema

// CoreAccountTable represents the 'core.account' table
type CoreAccountTable struct {
	Table     string
	ID        string
	Name      string
	TimeZone  string
	CreatedAt string
	UpdatedAt string
}

// CoreAccount is the schema definition for core.account
var CoreAccount = CoreAccountTable{
	Table:     "core.account",
	ID:        "id",
	Name:      "name",
	TimeZone:  "timezone",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
