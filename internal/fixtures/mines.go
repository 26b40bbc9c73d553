// Package fixtures holds the synthetic data shown by the site. Every accessor
// returns a fresh copy so callers cannot mutate the shared tables.
package fixtures

import "rockguard/internal/models"

var mines = []models.Mine{
	{Name: "Jharia Coalfield", Region: "Jharkhand", Coordinates: models.Coordinates{Latitude: 23.6739, Longitude: 85.3096}},
	{Name: "Bailadila Iron Ore Mine", Region: "Chhattisgarh", Coordinates: models.Coordinates{Latitude: 18.7167, Longitude: 81.0833}},
	{Name: "Kolar Gold Fields", Region: "Karnataka", Coordinates: models.Coordinates{Latitude: 12.9563, Longitude: 78.2762}},
}

// Mines returns the monitored mines in display order. The first is the default selection.
func Mines() []models.Mine {
	out := make([]models.Mine, len(mines))
	copy(out, mines)
	return out
}

// MineByName looks up a mine by its exact display name.
func MineByName(name string) (models.Mine, bool) {
	for _, m := range mines {
		if m.Name == name {
			return m, true
		}
	}
	return models.Mine{}, false
}
