package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"capstone-backend/app/model"
)

func strptr(s string) *string { return &s }

func trackedKeys() []string {
	keys := make([]string, 0, 9)
	for _, f := range RequirementFields {
		if f.Tracked {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func TestIsFilled(t *testing.T) {
	tests := []struct {
		name string
		v    *string
		want bool
	}{
		{name: "nil", v: nil, want: false},
		{name: "empty", v: strptr(""), want: false},
		{name: "spaces", v: strptr("   "), want: false},
		{name: "tabs and newline", v: strptr("\t\n\t"), want: false},
		{name: "text", v: strptr("x"), want: true},
		{name: "padded text", v: strptr("  metode agile  "), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFilled(tt.v))
		})
	}
}

func TestCompute_OverallForEveryFilledCount(t *testing.T) {
	keys := trackedKeys()
	assert.Len(t, keys, 9)

	want := []int{0, 11, 22, 33, 44, 56, 67, 78, 89, 100}
	for n := 0; n <= 9; n++ {
		values := map[string]*string{}
		for i := 0; i < n; i++ {
			values[keys[i]] = strptr("isi")
		}
		c := Compute(values)
		assert.Equal(t, want[n], c.OverallPercent, "filled=%d", n)
		assert.Equal(t, n, c.FilledCount)
		assert.Equal(t, 9, c.TotalCount)
	}
}

func TestCompute_Categories(t *testing.T) {
	// integrasiMatakuliah terisi, metodologi kosong, sisanya nil
	c := Compute(map[string]*string{
		"integrasiMatakuliah": strptr("x"),
		"metodologi":          strptr(""),
	})
	assert.Equal(t, 11, c.OverallPercent)
	assert.Equal(t, CategoryCompletion{Filled: 1, Total: 2, Percent: 50}, c.Categories[CategoryAkademik])
	assert.Equal(t, CategoryCompletion{Filled: 0, Total: 3, Percent: 0}, c.Categories[CategoryTeknis])
	assert.Equal(t, CategoryCompletion{Filled: 0, Total: 4, Percent: 0}, c.Categories[CategoryAnalisis])
	_, hasProduction := c.Categories[CategoryProduction]
	assert.False(t, hasProduction)

	c = Compute(map[string]*string{
		"ruangLingkup":      strptr("a"),
		"sumberDayaBatasan": strptr("b"),
		"analisisTemuan":    strptr("c"),
	})
	assert.Equal(t, 67, c.Categories[CategoryTeknis].Percent)
	assert.Equal(t, 25, c.Categories[CategoryAnalisis].Percent)
}

func TestCompute_WhitespaceOnlyNotFilled(t *testing.T) {
	values := map[string]*string{}
	for _, k := range trackedKeys() {
		values[k] = strptr(" \t ")
	}
	c := Compute(values)
	assert.Equal(t, 0, c.OverallPercent)
	for _, f := range c.Fields {
		assert.False(t, f.Filled, f.Key)
	}
}

func TestComputeRequirements_IgnoresProductionFields(t *testing.T) {
	r := &model.ProjectRequirements{
		Metodologi:      strptr("waterfall"),
		ProductionURL:   strptr("https://app.example.ac.id"),
		TestingUsername: strptr("tester"),
		TestingPassword: strptr("secret"),
		TestingNotes:    strptr("login pakai akun demo"),
	}
	c := ComputeRequirements(r)
	assert.Equal(t, 1, c.FilledCount)
	assert.Equal(t, 11, c.OverallPercent)
	assert.Len(t, c.Fields, 9)

	assert.Equal(t, 0, ComputeRequirements(nil).OverallPercent)
}

func TestCompute_Deterministic(t *testing.T) {
	values := map[string]*string{"fiturUtama": strptr("login"), "stakeholder": strptr("prodi")}
	assert.Equal(t, Compute(values), Compute(values))
}

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name               string
		confirmed, pending int
		wantErr            bool
		remaining          int
	}{
		{name: "empty team", confirmed: 0, pending: 0, remaining: 3},
		{name: "two confirmed none pending", confirmed: 2, pending: 0, remaining: 1},
		{name: "two confirmed one pending", confirmed: 2, pending: 1, wantErr: true, remaining: 0},
		{name: "three confirmed", confirmed: 3, pending: 0, wantErr: true, remaining: 0},
		{name: "over capacity", confirmed: 3, pending: 2, wantErr: true, remaining: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCapacity(tt.confirmed, tt.pending, DefaultMaxMembers)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.remaining, RemainingSlots(tt.confirmed, tt.pending, DefaultMaxMembers))
		})
	}
}
