package tags

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr bool
	}{
		{
			name:  "empty list",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "already canonical",
			input: []string{"dome", "weather_alert"},
			want:  []string{"dome", "weather_alert"},
		},
		{
			name:  "uppercase is lowered",
			input: []string{"Dome", "WEATHER"},
			want:  []string{"dome", "weather"},
		},
		{
			name:  "dashes become underscores",
			input: []string{"weather-alert", "m1-m3"},
			want:  []string{"weather_alert", "m1_m3"},
		},
		{
			name:    "must start with a letter",
			input:   []string{"1dome"},
			wantErr: true,
		},
		{
			name:    "no spaces",
			input:   []string{"weather alert"},
			wantErr: true,
		},
		{
			name:    "no empty tag",
			input:   []string{""},
			wantErr: true,
		},
		{
			name:    "one bad tag fails the whole list",
			input:   []string{"dome", "bad tag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%v) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%v) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Normalize(%v)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
