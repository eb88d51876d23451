package sim

// freefallStirChance is the per-tick probability (out of 256) that a falling
// water cell re-randomizes its flow bias, decorrelating neighbors that were
// painted with the same stroke.
const freefallStirChance = 13 // ~5%

// updateWater falls like sand, then spreads horizontally using a persistent
// flow direction in Ra bit 0 that flips when blocked. Touching fire consumes
// both cells into smoke.
func updateWater(me Cell, api *API) {
	if consumeOnContact(api, Fire) {
		return
	}

	below := api.Get(0, 1)
	if below.Species == Empty {
		if api.RandByte() < freefallStirChance {
			me.Ra = api.RandByte()
			api.Set(0, 0, me)
		}
		api.Swap(0, 1)
		return
	}

	dx := api.RandSide()
	if api.Get(dx, 1).Species == Empty {
		api.Swap(dx, 1)
		return
	}
	if api.Get(-dx, 1).Species == Empty {
		api.Swap(-dx, 1)
		return
	}

	// Blocked below: purely horizontal step along the flow direction.
	dir := 1
	if me.Ra&1 == 0 {
		dir = -1
	}
	if api.Get(dir, 0).Species == Empty {
		api.Swap(dir, 0)
		return
	}
	// Flip the bias and try the other side. When both sides are blocked
	// nothing is written, so a sealed pool settles and its chunk goes clean.
	me.Ra ^= 1
	if api.Get(-dir, 0).Species == Empty {
		api.Set(0, 0, me)
		api.Swap(-dir, 0)
	}
}
