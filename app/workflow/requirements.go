package workflow

import (
	"math"
	"strings"

	"capstone-backend/app/model"
)

// Category kelompok field requirements.
type Category string

const (
	CategoryAkademik   Category = "akademik"
	CategoryTeknis     Category = "teknis"
	CategoryAnalisis   Category = "analisis"
	CategoryProduction Category = "production"
)

// TrackedCategories kategori yang dihitung ke completion, sesuai urutan form.
var TrackedCategories = []Category{CategoryAkademik, CategoryTeknis, CategoryAnalisis}

// FieldSpec deskriptor satu field form requirements. Dipakai kalkulator
// completion maupun layer tampilan.
type FieldSpec struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Tracked  bool     `json:"tracked"`
}

// RequirementFields skema form requirements: 9 field terhitung + field production.
var RequirementFields = []FieldSpec{
	{Key: "integrasiMatakuliah", Label: "Integrasi Mata Kuliah", Category: CategoryAkademik, Tracked: true},
	{Key: "metodologi", Label: "Metodologi", Category: CategoryAkademik, Tracked: true},

	{Key: "ruangLingkup", Label: "Ruang Lingkup", Category: CategoryTeknis, Tracked: true},
	{Key: "sumberDayaBatasan", Label: "Sumber Daya & Batasan", Category: CategoryTeknis, Tracked: true},
	{Key: "fiturUtama", Label: "Fitur Utama", Category: CategoryTeknis, Tracked: true},

	{Key: "analisisTemuan", Label: "Analisis Temuan", Category: CategoryAnalisis, Tracked: true},
	{Key: "presentasiUjian", Label: "Presentasi Ujian", Category: CategoryAnalisis, Tracked: true},
	{Key: "stakeholder", Label: "Stakeholder", Category: CategoryAnalisis, Tracked: true},
	{Key: "kepatuhanEtika", Label: "Kepatuhan Etika", Category: CategoryAnalisis, Tracked: true},

	{Key: "productionUrl", Label: "URL Production", Category: CategoryProduction},
	{Key: "productionUrlStatus", Label: "Status URL Production", Category: CategoryProduction},
	{Key: "testingUsername", Label: "Username Testing", Category: CategoryProduction},
	{Key: "testingPassword", Label: "Password Testing", Category: CategoryProduction},
	{Key: "testingNotes", Label: "Catatan Testing", Category: CategoryProduction},
}

// FieldStatus status terisi per field untuk checklist.
type FieldStatus struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Filled   bool     `json:"filled"`
}

// CategoryCompletion kelengkapan satu kategori.
type CategoryCompletion struct {
	Filled  int `json:"filled"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Completion hasil perhitungan kelengkapan requirements.
type Completion struct {
	OverallPercent int                             `json:"overallPercent"`
	FilledCount    int                             `json:"filledCount"`
	TotalCount     int                             `json:"totalCount"`
	Categories     map[Category]CategoryCompletion `json:"categories"`
	Fields         []FieldStatus                   `json:"fields"`
}

// IsFilled: field tidak nil dan tidak kosong setelah di-trim.
func IsFilled(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}

// Compute menghitung kelengkapan dari nilai field (key = FieldSpec.Key).
// Field yang tidak ada di map dianggap belum terisi.
func Compute(values map[string]*string) Completion {
	c := Completion{Categories: make(map[Category]CategoryCompletion, len(TrackedCategories))}
	for _, f := range RequirementFields {
		if !f.Tracked {
			continue
		}
		filled := IsFilled(values[f.Key])

		cat := c.Categories[f.Category]
		cat.Total++
		c.TotalCount++
		if filled {
			cat.Filled++
			c.FilledCount++
		}
		c.Categories[f.Category] = cat

		c.Fields = append(c.Fields, FieldStatus{Key: f.Key, Label: f.Label, Category: f.Category, Filled: filled})
	}

	for k, cat := range c.Categories {
		cat.Percent = percent(cat.Filled, cat.Total)
		c.Categories[k] = cat
	}
	c.OverallPercent = percent(c.FilledCount, c.TotalCount)
	return c
}

// ComputeRequirements menghitung kelengkapan langsung dari record; nil berarti 0%.
func ComputeRequirements(r *model.ProjectRequirements) Completion {
	return Compute(RequirementValues(r))
}

// RequirementValues memetakan record ke map key -> nilai field terhitung.
func RequirementValues(r *model.ProjectRequirements) map[string]*string {
	if r == nil {
		return map[string]*string{}
	}
	return map[string]*string{
		"integrasiMatakuliah": r.IntegrasiMatakuliah,
		"metodologi":          r.Metodologi,
		"ruangLingkup":        r.RuangLingkup,
		"sumberDayaBatasan":   r.SumberDayaBatasan,
		"fiturUtama":          r.FiturUtama,
		"analisisTemuan":      r.AnalisisTemuan,
		"presentasiUjian":     r.PresentasiUjian,
		"stakeholder":         r.Stakeholder,
		"kepatuhanEtika":      r.KepatuhanEtika,
	}
}

func percent(filled, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(filled) / float64(total)))
}
