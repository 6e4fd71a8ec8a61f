package query

import "testing"

func TestDateString(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day string
		want             string
	}{
		{"year only", "1650", "", "", "1650"},
		{"year and month", "1650", "3", "", "1650-03"},
		{"full date", "1650", "3", "7", "1650-03-07"},
		{"already padded", "1650", "11", "21", "1650-11-21"},
		{"no year", "", "3", "7", ""},
		{"day without month", "1650", "", "7", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateString(tt.year, tt.month, tt.day)
			if got != tt.want {
				t.Errorf("dateString(%q, %q, %q) = %q, want %q",
					tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestDateRangeClause(t *testing.T) {
	tests := []struct {
		name           string
		min, max, mode string
		want           string
	}{
		{
			name: "explicit range",
			min:  "1650", max: "1700",
			want: "{!field f=dateRange op=Intersects}[1650 TO 1700]",
		},
		{
			name: "between without max",
			min:  "1650", mode: "between",
			want: "{!field f=dateRange op=Intersects}[1650 TO 2009-02-12]",
		},
		{
			name: "between without min",
			max:  "1700", mode: "between",
			want: "{!field f=dateRange op=Intersects}[1609-02-12 TO 1700]",
		},
		{
			name: "after",
			min:  "1650", mode: "after",
			want: "{!field f=dateRange op=Intersects}[1650 TO 2009-02-12]",
		},
		{
			name: "before",
			min:  "1650", mode: "before",
			want: "{!field f=dateRange op=Intersects}[-3000-01-01 TO 1650]",
		},
		{
			name: "exact date",
			min:  "1650-03-07",
			want: "{!field f=dateRange op=Within}1650-03-07",
		},
		{
			name: "nothing",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateRangeClause(tt.min, tt.max, tt.mode)
			if got != tt.want {
				t.Errorf("dateRangeClause(%q, %q, %q) = %q, want %q",
					tt.min, tt.max, tt.mode, got, tt.want)
			}
		})
	}
}
