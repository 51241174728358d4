package analysis

import (
	"sort"

	"fuelstat/internal/models"
)

type yearGroup struct {
	year    int
	records []models.VehicleRecord
}

// groupByYear splits records by year, ascending. Records keep their
// original relative order inside each group.
func groupByYear(records []models.VehicleRecord) []yearGroup {
	index := make(map[int]int)
	var groups []yearGroup
	for _, r := range records {
		i, ok := index[r.Year]
		if !ok {
			i = len(groups)
			index[r.Year] = i
			groups = append(groups, yearGroup{year: r.Year})
		}
		groups[i].records = append(groups[i].records, r)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].year < groups[b].year
	})
	return groups
}
