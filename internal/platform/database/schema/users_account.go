package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	AccountID    string
	Name         string
	Email        string
	PasswordHash string
	IsActive     string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	AccountID:    "accountid",
	Name:         "name",
	Email:        "email",
	PasswordHash: "passwordhash",
	IsActive:     "isactive",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.AccountID, t.Name, t.Email, t.PasswordHash, t.IsActive,
		t.CreatedAt, t.UpdatedAt,
	}
}

// UserAccountRoleTable represents the 'users.accountrole' table
type UserAccountRoleTable struct {
	Table     string
	AccountID string
	UserID    string
	Role      string
	CreatedAt string
}

// UserAccountRole is the schema definition for users.accountrole
var UserAccountRole = UserAccountRoleTable{
	Table:     "users.accountrole",
	AccountID: "accountid",
	UserID:    "userid",
	Role:      "role",
	CreatedAt: "createdat",
}
