// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

type Repository interface {
	Get(context context.Context, accountID, id int64) (*Category, error)
	List(context context.Context, accountID int64) ([]*Category, error)
	Create(context context.Context, c *Category) error
}
