package core

import "github.com/google/uuid"

// Handle identifies a graphics pipeline independently of its display name and
// position. Handles are never reused.
type Handle = uuid.UUID

// InvalidHandle is the zero handle; it never refers to a pipeline.
var InvalidHandle = uuid.Nil

func NewHandle() Handle {
	return uuid.New()
}
