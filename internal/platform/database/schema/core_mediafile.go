package schema

// CoreMediaFileTable represents the 'core.mediafile' table
type CoreMediaFileTable struct {
	Table         string
	ID            string
	AccountID     string
	Kind          string
	Title         string
	Description   string
	LinkAlternate string
	Date          string
	ContentType   string
	FileName      string
	StorageKey    string
	SizeBytes     string
	Width         string
	Height        string
	CreatedAt     string
	UpdatedAt     string
}

// CoreMediaFile is the schema definition for core.mediafile
var CoreMediaFile = CoreMediaFileTable{
	Table:         "core.mediafile",
	ID:            "id",
	AccountID:     "accountid",
	Kind:          "kind",
	Title:         "title",
	Description:   "description",
	LinkAlternate: "linkalternate",
	Date:          "date",
	ContentType:   "contenttype",
	FileName:      "filename",
	StorageKey:    "storagekey",
	SizeBytes:     "sizebytes",
	Width:         "width",
	Height:        "height",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns the columns hydrated into a Mediafile, in scan order.
func (t CoreMediaFileTable) Columns() []string {
	return []string{
		t.ID, t.AccountID, t.Kind, t.Title, t.Description, t.LinkAlternate, t.Date,
		t.ContentType, t.FileName, t.StorageKey, t.SizeBytes, t.Width, t.Height,
		t.CreatedAt, t.UpdatedAt,
	}
}

// CoreWaxingTable represents the 'core.waxing' join table
type CoreWaxingTable struct {
	Table       string
	ID          string
	AccountID   string
	DocumentID  string
	MediafileID string
	Caption     string
	CreatedAt   string
}

// CoreWaxing is the schema definition for core.waxing
var CoreWaxing = CoreWaxingTable{
	Table:       "core.waxing",
	ID:          "id",
	AccountID:   "accountid",
	DocumentID:  "documentid",
	MediafileID: "mediafileid",
	Caption:     "caption",
	CreatedAt:   "createdat",
}
