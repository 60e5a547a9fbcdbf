package workflow

import (
	"capstone-backend/app/model"

	"github.com/google/uuid"
)

// OverallScore jumlah skor pada rubrik aktif. Skor untuk rubrik yang sudah
// dinonaktifkan diabaikan. nil bila belum ada skor sama sekali.
func OverallScore(scores map[uuid.UUID]float64, active []model.Rubrik) *float64 {
	var (
		total  float64
		scored bool
	)
	for _, r := range active {
		if v, ok := scores[r.ID]; ok {
			total += v
			scored = true
		}
	}
	if !scored {
		return nil
	}
	return &total
}

// MissingRubriks rubrik aktif yang belum diberi skor, urut sesuai input.
func MissingRubriks(scores map[uuid.UUID]float64, active []model.Rubrik) []model.Rubrik {
	var missing []model.Rubrik
	for _, r := range active {
		if _, ok := scores[r.ID]; !ok {
			missing = append(missing, r)
		}
	}
	return missing
}
