package contact_test

import (
	"testing"
	"time"

	appcontact "github.com/oleksandr-romashko/contacts-api/application/contact"
	"github.com/oleksandr-romashko/contacts-api/model"
)

func TestCelebrationDate(t *testing.T) {
	tests := []struct {
		name             string
		birthdate        model.Date
		year             int
		moveFeb29ToFeb28 bool
		want             model.Date
	}{
		{
			name:      "weekday birthday keeps its date",
			birthdate: model.NewDate(1990, time.June, 10),
			year:      2026, // 2026-06-10 is a Wednesday
			want:      model.NewDate(2026, time.June, 10),
		},
		{
			name:      "saturday birthday moves to monday",
			birthdate: model.NewDate(1985, time.June, 13),
			year:      2026, // 2026-06-13 is a Saturday
			want:      model.NewDate(2026, time.June, 15),
		},
		{
			name:      "sunday birthday moves to monday",
			birthdate: model.NewDate(2000, time.June, 14),
			year:      2026, // 2026-06-14 is a Sunday
			want:      model.NewDate(2026, time.June, 15),
		},
		{
			name:             "feb 29 in leap year stays on feb 29",
			birthdate:        model.NewDate(1992, time.February, 29),
			year:             2028, // leap year, 2028-02-29 is a Tuesday
			moveFeb29ToFeb28: true,
			want:             model.NewDate(2028, time.February, 29),
		},
		{
			name:             "feb 29 in non-leap year observed on feb 28",
			birthdate:        model.NewDate(1992, time.February, 29),
			year:             2025, // 2025-02-28 is a Friday
			moveFeb29ToFeb28: true,
			want:             model.NewDate(2025, time.February, 28),
		},
		{
			name:             "feb 29 in non-leap year observed on mar 1, shifted off saturday",
			birthdate:        model.NewDate(1992, time.February, 29),
			year:             2025, // 2025-03-01 is a Saturday
			moveFeb29ToFeb28: false,
			want:             model.NewDate(2025, time.March, 3),
		},
		{
			name:             "feb 29 substitute date still gets the weekend shift",
			birthdate:        model.NewDate(1992, time.February, 29),
			year:             2026, // 2026-02-28 is a Saturday
			moveFeb29ToFeb28: true,
			want:             model.NewDate(2026, time.March, 2),
		},
		{
			name:      "century non-leap year treats feb 29 as substitute",
			birthdate: model.NewDate(1992, time.February, 29),
			year:      2100, // divisible by 100 but not 400, 2100-03-01 is a Monday
			want:      model.NewDate(2100, time.March, 1),
		},
		{
			name:      "year end birthday on a weekday",
			birthdate: model.NewDate(1970, time.December, 31),
			year:      2026, // 2026-12-31 is a Thursday
			want:      model.NewDate(2026, time.December, 31),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := appcontact.CelebrationDate(tt.birthdate, tt.year, tt.moveFeb29ToFeb28)
			if !got.Equal(tt.want) {
				t.Fatalf("CelebrationDate() = %s, want %s", got, tt.want)
			}
			// Shifting is idempotent: a celebration date never lands on a weekend.
			if wd := got.Weekday(); wd == time.Saturday || wd == time.Sunday {
				t.Fatalf("CelebrationDate() landed on %s", wd)
			}
		})
	}
}
