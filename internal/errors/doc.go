// Package errors provides structured errors for the trainer-api service layers.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. They convert to and from gRPC status errors at the handler boundary.
//
// The scaling engine itself (internal/engine/...) never returns errors: every
// anomalous input there has a defined fallback. This package is used by the
// layers around it: table loading, repositories, orchestrators and handlers.
//
// # Basic Usage
//
//	err := errors.NotFound("card not found").WithMeta("card", name)
//	err := errors.InvalidArgumentf("limit break level %d out of range", level)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load roster")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	errors.ValidateRange("level", input.Level, 0, 4, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
//	out, err := h.catalog.ResolveCard(ctx, input)
//	if err != nil {
//	    return nil, errors.ToGRPCError(err)
//	}
package errors
