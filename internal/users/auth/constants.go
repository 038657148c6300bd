// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

const (
	// AccessTokenTTL is how long a login stays valid. There is no refresh
	// flow; staff log in again after it expires.
	AccessTokenTTL = 12 * time.Hour

	// TokenIssuer is the "iss" claim of every access token.
	TokenIssuer = "hotink"
)
