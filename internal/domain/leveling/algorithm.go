package leveling

// requiredExp returns the cumulative EXP threshold for advancing past
// the given level: level^2 * LevelExpBase. A user at exactly the
// threshold has already advanced, so requiredExp(1)=50 means 50 EXP
// puts a user at level 2.
func requiredExp(level int, params *Params) int {
	if level < 1 {
		return 0
	}
	return level * level * params.LevelExpBase
}

// calculateLevel derives the level for a cumulative EXP total by
// incremental search: starting at 1, the level advances once for every
// threshold the total has reached. Totals below the first threshold map
// to level 1.
//
// An equivalent closed form floor(sqrt(total/base))+1 exists, but the
// search is canonical here; the exact-threshold behavior (50 EXP is
// level 2, 200 EXP is level 3) is pinned by tests.
func calculateLevel(totalExp int, params *Params) int {
	level := 1
	for requiredExp(level, params) <= totalExp {
		level++
	}
	return level
}

// calculateProgress returns the percentage of the way from the current
// level's floor threshold to the next advancement threshold, always in
// [0, 100) and strictly increasing within a level.
func calculateProgress(totalExp int, params *Params) float64 {
	level := calculateLevel(totalExp, params)
	floor := requiredExp(level-1, params)
	ceiling := requiredExp(level, params)

	return float64(totalExp-floor) / float64(ceiling-floor) * 100
}
