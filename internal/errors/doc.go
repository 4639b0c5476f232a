// Package errors provides coded errors for the forge-api service.
//
// An Error carries a code, a user-facing message, an optional cause and a
// metadata map. Codes map one to one onto gRPC status codes.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("player not found")
//	err := errors.FailedPreconditionf("talent requires level %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("material not owned by player").
//	    WithMeta("player_id", playerID).
//	    WithMeta("material_id", materialID)
//
// Wrapping errors keeps the code of the wrapped Error:
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to get player")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	errors.ValidateRange("material_ids", len(input.MaterialIDs), 1, 3, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err). Metadata is attached as a
// google.protobuf.Struct status detail of the form
// {"code": "...", "meta": {...}} and restored by FromGRPCError on the client.
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include the key ids in metadata
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check game rules and return FailedPrecondition errors
//
// Handler layer:
//   - Convert errors to gRPC format
//   - Log internal errors
package errors
