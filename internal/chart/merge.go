package chart

// Merge deep-merges overlay on top of base and returns a new map.
// For keys present in both where both values are maps, the merge
// recurses; on any other collision the overlay value wins. Neither
// input is mutated. Inputs are freshly decoded YAML trees, so cycles
// cannot occur.
func Merge(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range overlay {
		baseMap, baseOK := result[k].(map[string]any)
		overlayMap, overlayOK := v.(map[string]any)
		if baseOK && overlayOK {
			result[k] = Merge(baseMap, overlayMap)
			continue
		}
		result[k] = v
	}
	return result
}
