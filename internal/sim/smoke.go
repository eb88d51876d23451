package sim

// sidewaysDriftChance is the per-tick probability (out of 256) that smoke
// takes a purely horizontal step instead of rising.
const sidewaysDriftChance = 77 // ~30%

// updateSmoke fades out its lifetime while rising like fire, with occasional
// sideways drift. On expiry the cell becomes Empty.
func updateSmoke(me Cell, api *API) {
	if me.Rb > 0 {
		me.Rb--
	}
	if me.Rb == 0 {
		api.Set(0, 0, emptyCell)
		return
	}

	if api.RandByte() < sidewaysDriftChance {
		dir := api.RandSide()
		if api.Get(dir, 0).Species == Empty {
			api.Set(0, 0, emptyCell)
			api.Set(dir, 0, me)
			return
		}
	}

	dx := api.RandDir()
	for _, d := range [3]int{dx, 0, -dx} {
		if api.Get(d, -1).Species == Empty {
			api.Set(0, 0, emptyCell)
			api.Set(d, -1, me)
			return
		}
	}

	// Trapped under a ceiling: churn with older smoke above so plumes keep
	// moving instead of freezing in layers.
	above := api.Get(0, -1)
	if above.Species == Smoke && above.Rb < me.Rb {
		api.Set(0, 0, above)
		api.Set(0, -1, me)
		return
	}

	api.Set(0, 0, me)
}
