// README: Geocoding result model.
package geocode

import "taxigo/internal/types"

// Place is a resolved location candidate from forward geocoding.
type Place struct {
	Label string      `json:"label"`
	Point types.Point `json:"point"`
}
