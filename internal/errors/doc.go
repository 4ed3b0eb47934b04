// Package errors provides the structured error type shared by every layer of the sheet service.
//
// Errors carry a Code, a user facing Message, an optional Cause and free-form Meta:
//
//	err := errors.NotFoundf("character %s not found", id).
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of the wrapped error unless a new one is requested:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to commit level up")
//	}
//
// # Layer guidelines
//
// Repositories return NotFound, AlreadyExists and InvalidArgument. Orchestrators validate input
// (InvalidArgument) and wizard ordering (FailedPrecondition). Handlers convert to gRPC status with
// ToGRPCError.
//
// The rules core (formulas, reference lookups, the leveling engine) does not use this package for
// lookups that miss or level ups that do not apply; those report absence through ok values.
package errors
