package workflow

import "capstone-backend/app/model"

// StatusMeta informasi tampilan sebuah status. Satu-satunya tabel
// status -> label/warna yang dipakai semua layar.
type StatusMeta struct {
	Status   model.ProjectStatus `json:"status"`
	Label    string              `json:"label"`
	Color    string              `json:"color"`
	Gradient string              `json:"gradient"`
	Terminal bool                `json:"terminal"`
}

var statusTable = map[model.ProjectStatus]StatusMeta{
	model.StatusDraft:          {Status: model.StatusDraft, Label: "Draft", Color: "gray", Gradient: "from-gray-400 to-gray-600"},
	model.StatusSubmitted:      {Status: model.StatusSubmitted, Label: "Diajukan", Color: "blue", Gradient: "from-blue-400 to-blue-600"},
	model.StatusInReview:       {Status: model.StatusInReview, Label: "Sedang Direview", Color: "yellow", Gradient: "from-yellow-400 to-orange-500"},
	model.StatusRevisionNeeded: {Status: model.StatusRevisionNeeded, Label: "Perlu Revisi", Color: "orange", Gradient: "from-orange-400 to-red-500"},
	model.StatusApproved:       {Status: model.StatusApproved, Label: "Disetujui", Color: "green", Gradient: "from-green-400 to-emerald-600", Terminal: true},
	model.StatusRejected:       {Status: model.StatusRejected, Label: "Ditolak", Color: "red", Gradient: "from-red-500 to-rose-700", Terminal: true},
}

// StatusInfo mengembalikan meta sebuah status; status tak dikenal
// dikembalikan apa adanya dengan warna netral.
func StatusInfo(s model.ProjectStatus) StatusMeta {
	if m, ok := statusTable[s]; ok {
		return m
	}
	return StatusMeta{Status: s, Label: string(s), Color: "gray", Gradient: "from-gray-400 to-gray-600"}
}

// StatusTable seluruh status dalam urutan kanonik.
func StatusTable() []StatusMeta {
	out := make([]StatusMeta, 0, len(model.AllProjectStatuses))
	for _, s := range model.AllProjectStatuses {
		out = append(out, statusTable[s])
	}
	return out
}
