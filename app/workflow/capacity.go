package workflow

import "capstone-backend/app/apperror"

// DefaultMaxMembers batas anggota di luar ketua (ketua + 3 = 4 orang).
const DefaultMaxMembers = 3

// CheckCapacity menolak undangan baru bila anggota terkonfirmasi (tanpa ketua)
// ditambah undangan PENDING sudah mencapai max.
func CheckCapacity(confirmed, pending, max int) error {
	if confirmed+pending >= max {
		return &apperror.CapacityExceededError{Max: max, Current: confirmed + pending}
	}
	return nil
}

// RemainingSlots sisa slot undangan; tidak pernah negatif.
func RemainingSlots(confirmed, pending, max int) int {
	if n := max - confirmed - pending; n > 0 {
		return n
	}
	return 0
}
