// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "context"

// Repository persists authors. Every method is scoped to one account.
type Repository interface {
	FindOrCreate(context context.Context, accountID int64, name string) (*Author, error)
	Get(context context.Context, accountID, id int64) (*Author, error)
	List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Author, int, error)
}
