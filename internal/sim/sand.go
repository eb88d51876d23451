package sim

// updateSand moves a sand grain down, else down-diagonally with a random
// first side. Sand is denser than water, so a fluid below is displaced by
// swapping rather than blocking the fall.
func updateSand(me Cell, api *API) {
	below := api.Get(0, 1)
	if below.Species == Empty || below.Species == Water {
		api.Swap(0, 1)
		return
	}

	dx := api.RandSide()
	diag := api.Get(dx, 1)
	if diag.Species == Empty || diag.Species == Water {
		api.Swap(dx, 1)
		return
	}
	diag = api.Get(-dx, 1)
	if diag.Species == Empty || diag.Species == Water {
		api.Swap(-dx, 1)
	}
}
