package content

import "strings"

// GroupVenues buckets venues by region in one pass. Buckets keep the order
// in which their region first appears and venues keep input order within a
// bucket. Venues with a blank region share the OtherRegion bucket.
func GroupVenues(venues []Venue) []RegionGroup {
	if len(venues) == 0 {
		return nil
	}
	groups := make([]RegionGroup, 0, len(venues))
	index := make(map[string]int, len(venues))
	for _, v := range venues {
		region := strings.TrimSpace(v.Region)
		if region == "" {
			region = OtherRegion
		}
		i, ok := index[region]
		if !ok {
			i = len(groups)
			index[region] = i
			groups = append(groups, RegionGroup{Region: region})
		}
		groups[i].Venues = append(groups[i].Venues, v)
	}
	return groups
}
