package model

import "errors"

var (
	// ErrPostNotFound covers both a missing post and a post owned by
	// someone else. The two cases are deliberately indistinguishable
	// so non-owners cannot probe for post existence.
	ErrPostNotFound = errors.New("post not found or unauthorized to update")
)
