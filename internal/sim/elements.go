package sim

// rules dispatches per-species update functions. A dense array beats dynamic
// dispatch here: the species set is closed and the tick loop is hot. Empty
// and Wall are skipped before dispatch; Ghost is nil because ghost motion is
// a group pass, not a per-cell rule.
var rules = [numSpecies]func(Cell, *API){
	Sand:  updateSand,
	Water: updateWater,
	Fire:  updateFire,
	Smoke: updateSmoke,
}

// moore is the 8-neighborhood used by contact reactions.
var moore = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// newSmoke builds a freshly spawned smoke cell with a randomized lifetime.
func newSmoke(api *API) Cell {
	return Cell{
		Species: Smoke,
		Ra:      api.RandByte(),
		Rb:      smokeLifeMin + api.RandByte()%(smokeLifeMax-smokeLifeMin+1),
	}
}

// consumeOnContact scans the 8-neighborhood for the given species and, when
// found, replaces both this cell and the neighbor with smoke. Water+Fire is
// checked from both rules so the reaction fires regardless of which of the
// two cells the scan reaches first.
func consumeOnContact(api *API, target Species) bool {
	for _, o := range moore {
		if api.Get(o[0], o[1]).Species == target {
			api.Set(o[0], o[1], newSmoke(api))
			api.Set(0, 0, newSmoke(api))
			return true
		}
	}
	return false
}
