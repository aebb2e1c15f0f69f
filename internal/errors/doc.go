// Package errors provides the coded errors used across the game service.
//
// Every failure carries a Code, a player-facing Message and optional Meta.
// Game rules reject actions with two families of codes:
//
//	errors.Declinef(reasonLowHealth, "you are too weak to fight (hp %d)", hp)   // FailedPrecondition
//	errors.Duplicatef(reasonRewardClaimed, "daily reward already claimed")      // AlreadyExists
//
// Both attach Meta["reason"], which GetReason returns and which survives the
// trip through gRPC (see ToGRPCError and FromGRPCError). Unknown reference
// keys are NotFound. IsDeclined groups the three as expected outcomes.
//
// Repository code wraps storage failures:
//
//	if err := pipe.Exec(ctx); err != nil {
//	    return nil, errors.Wrapf(err, "failed to save player %d", id)
//	}
//
// Config structs validate with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
package errors
