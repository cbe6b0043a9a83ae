package mcsgd

import "math"

// stepSizeFn computes round's step size given the plan and the current
// adaptive rate (only Bold reads rate; every other variant is a pure
// function of round and the plan's alpha/beta/lambda).
type stepSizeFn func(round int, plan Plan, rate float64) float64

// intelStep is alpha * beta^round.
func intelStep(round int, plan Plan, _ float64) float64 {
	return plan.LearningRate * math.Pow(plan.DecayRate, float64(round))
}

// purdueStep is alpha * 1.5 / (1 + beta*(round+1)^1.5).
func purdueStep(round int, plan Plan, _ float64) float64 {
	return plan.LearningRate * 1.5 / (1 + plan.DecayRate*math.Pow(float64(round+1), 1.5))
}

// bottouStep is alpha / (1 + alpha*lambda*round).
func bottouStep(round int, plan Plan, _ float64) float64 {
	return plan.LearningRate / (1 + plan.LearningRate*plan.Lambda*float64(round))
}

// boldStep returns the externally-adapted rate unchanged; Run multiplies
// rate by 1.05 or 0.5 between rounds depending on whether total error
// fell.
func boldStep(_ int, _ Plan, rate float64) float64 {
	return rate
}

// inverseStep is 1 / (round+1).
func inverseStep(round int, _ Plan, _ float64) float64 {
	return 1 / float64(round+1)
}

// resolveStepFn maps a StepFunction to its implementation, failing
// ErrUnknownStepFunction for a value Run does not handle.
func resolveStepFn(sf StepFunction) (stepSizeFn, error) {
	switch sf {
	case Bold:
		return boldStep, nil
	case Intel:
		return intelStep, nil
	case Purdue:
		return purdueStep, nil
	case Bottou:
		return bottouStep, nil
	case Inverse:
		return inverseStep, nil
	default:
		return nil, ErrUnknownStepFunction
	}
}
