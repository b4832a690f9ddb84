package schedule

// RewardEvery is the completion count that earns one loyalty reward.
const RewardEvery = 10

// LoyaltyDelta is the counter change a status transition applies to the
// booking user. Deltas are computed purely from the transition edge so the
// reward math lives in one place.
type LoyaltyDelta struct {
	TotalAppointments int
	AvailableRewards  int
	UsedRewards       int
}

func (d LoyaltyDelta) IsZero() bool {
	return d == LoyaltyDelta{}
}

// TransitionDelta returns the loyalty mutation for moving an appointment
// from one status to another.
//
//   - into DONE: one more completion; every RewardEvery-th completion grants
//     a reward.
//   - into CANCELLED: if the appointment consumed a reward, refund it.
//   - out of DONE: undo the completion, and undo the grant if the completion
//     being reverted was itself a RewardEvery-th one.
//
// totalBefore is the user's completed-appointment count before the edge.
func TransitionDelta(from, to Status, rewardApplied bool, totalBefore int) LoyaltyDelta {
	var d LoyaltyDelta

	if to == StatusDone && from != StatusDone {
		d.TotalAppointments++
		if (totalBefore+1)%RewardEvery == 0 {
			d.AvailableRewards++
		}
	}

	if to == StatusCancelled && from != StatusCancelled && rewardApplied {
		d.AvailableRewards++
		d.UsedRewards--
	}

	if from == StatusDone && to != StatusDone {
		d.TotalAppointments--
		if totalBefore%RewardEvery == 0 {
			d.AvailableRewards--
		}
	}

	return d
}

// ReversalDelta is the exactly-once refund applied when a reward-bearing
// appointment leaves the active set (cancel or hard delete).
func ReversalDelta() LoyaltyDelta {
	return LoyaltyDelta{AvailableRewards: 1, UsedRewards: -1}
}

// ConsumptionDelta is the debit applied when a reward discounts a booking.
func ConsumptionDelta() LoyaltyDelta {
	return LoyaltyDelta{AvailableRewards: -1, UsedRewards: 1}
}

// Apply adds the delta to the given counters, flooring each at zero.
func (d LoyaltyDelta) Apply(total, available, used int) (int, int, int) {
	return clampZero(total + d.TotalAppointments),
		clampZero(available + d.AvailableRewards),
		clampZero(used + d.UsedRewards)
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
