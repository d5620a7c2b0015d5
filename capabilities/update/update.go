package update

import "github.com/damedic/azsearch-toolbox-go/model"

// Result of a create-or-update operation.
//
// It contains the persisted model and a boolean indicating whether it was created or updated.
type Result[M model.Model] struct {
	Model M
	// Created indicates whether the model was newly created (true) or an existing one was replaced (false).
	Created bool
}
