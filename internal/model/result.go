package model

import "github.com/google/uuid"

// UpdateResult reports the outcome of an update or upsert. A matched count
// of zero with no upserted ID means the update was a no-op; callers must
// inspect the counts rather than rely on an error.
type UpdateResult struct {
	MatchedCount  int64      `json:"matchedCount"`
	ModifiedCount int64      `json:"modifiedCount"`
	UpsertedID    *uuid.UUID `json:"upsertedId,omitempty"`
}

// DeleteResult reports the outcome of a delete. Deleting an unknown
// identifier yields a count of zero, not an error.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
