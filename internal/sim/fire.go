package sim

// updateFire burns down its lifetime and rises. Rb is the remaining life;
// when it runs out the cell turns to smoke, seeding extra smoke into empty
// cells above for a denser plume. Adjacent water extinguishes the fire,
// consuming both cells. Fire never moves downward.
func updateFire(me Cell, api *API) {
	if consumeOnContact(api, Water) {
		return
	}

	if me.Rb > 0 {
		me.Rb--
	}
	if me.Rb == 0 {
		api.Set(0, 0, newSmoke(api))
		for dx := -1; dx <= 1; dx++ {
			if api.Get(dx, -1).Species == Empty && api.RandByte()&1 == 0 {
				api.Set(dx, -1, newSmoke(api))
			}
		}
		return
	}

	// Rise one cell: straight up or up-diagonal, random tie-break.
	dx := api.RandDir()
	for _, d := range [3]int{dx, 0, -dx} {
		if api.Get(d, -1).Species == Empty {
			api.Set(0, 0, emptyCell)
			api.Set(d, -1, me)
			return
		}
	}

	// Pinned: age in place.
	api.Set(0, 0, me)
}
