package match

import "errors"

// Command rejection reasons. The command processor never panics on bad
// input; every illegal command returns one of these.
var (
	errPhase             = errors.New("match: wrong phase for this command")
	errBusy              = errors.New("match: a blocking interaction or priority phase is active")
	errNotYourTurn       = errors.New("match: command player does not match the expected actor")
	errInvalidCard       = errors.New("match: card does not exist, is not yours, or is dead")
	errInvalidTarget     = errors.New("match: target is not legal for this action")
	errInvalidAbility    = errors.New("match: ability does not exist or is not usable here")
	errCardCannotAct     = errors.New("match: card is tapped, webbed, or stunned")
	errNoSuchInteraction = errors.New("match: no matching interaction is pending")
	errForcedAttackers   = errors.New("match: forced attackers must act before anything else")
	errUnknownCommand    = errors.New("match: unknown command kind")
)
