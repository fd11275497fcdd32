package extractor

import "testing"

func TestRenderStringTable(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "headers and rows",
			rows: [][]string{
				{"Region", "Revenue"},
				{"EMEA", "120"},
				{"APAC", "95"},
			},
			want: "Region: EMEA; Revenue: 120\nRegion: APAC; Revenue: 95",
		},
		{
			name: "missing header falls back to column number",
			rows: [][]string{
				{"Region", ""},
				{"EMEA", "120"},
			},
			want: "Region: EMEA; Column 2: 120",
		},
		{
			name: "row wider than header",
			rows: [][]string{
				{"Region"},
				{"EMEA", "120"},
			},
			want: "Region: EMEA; Column 2: 120",
		},
		{
			name: "single row keeps values",
			rows: [][]string{{"just", "values"}},
			want: "just; values",
		},
		{
			name: "empty table",
			rows: nil,
			want: "",
		},
		{
			name: "single empty row",
			rows: [][]string{{"", ""}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderStringTable(tt.rows); got != tt.want {
				t.Errorf("renderStringTable() = %q, want %q", got, tt.want)
			}
		})
	}
}
