package domain

import "testing"

func TestParseTypeFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    TypeFilter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"VG", FilterVerge, false},
		{"verge", FilterVerge, false},
		{"BS", FilterBioswale, false},
		{"Bioswales", FilterBioswale, false},
		{"swamp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTypeFilter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTypeFilter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTypeFilter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypeFilter_Next(t *testing.T) {
	if got := FilterAll.Next(); got != FilterVerge {
		t.Errorf("expected VG after all, got %s", got)
	}
	if got := FilterVerge.Next(); got != FilterBioswale {
		t.Errorf("expected BS after VG, got %s", got)
	}
	if got := FilterBioswale.Next(); got != FilterAll {
		t.Errorf("expected all after BS, got %s", got)
	}
}

func TestLabels(t *testing.T) {
	if TypeVerge.Label() != "Verge Garden" {
		t.Errorf("unexpected VG label %q", TypeVerge.Label())
	}
	if TypeBioswale.Label() != "Bioswale" {
		t.Errorf("unexpected BS label %q", TypeBioswale.Label())
	}
	if PlantNeedsAttention.Label() != "needs attention" {
		t.Errorf("unexpected plant label %q", PlantNeedsAttention.Label())
	}
	if got := TitleCase(PlantNeedsAttention.Label()); got != "Needs Attention" {
		t.Errorf("TitleCase = %q", got)
	}
}
