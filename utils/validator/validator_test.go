package validatorx_test

import (
	"testing"
	"time"

	"github.com/oleksandr-romashko/contacts-api/model"
	validatorx "github.com/oleksandr-romashko/contacts-api/utils/validator"
)

func TestValidateStruct_DateFields(t *testing.T) {
	base := model.ContactRequest{
		FirstName:   "Linda",
		LastName:    "Hopper",
		Email:       "linda@example.com",
		PhoneNumber: "+1-555-0100",
	}

	tests := []struct {
		name      string
		birthdate model.Date
		wantErr   bool
	}{
		{
			name:      "past birthdate passes",
			birthdate: model.NewDate(1990, time.March, 14),
			wantErr:   false,
		},
		{
			name:      "future birthdate rejected",
			birthdate: model.NewDate(time.Now().Year()+2, time.January, 1),
			wantErr:   true,
		},
		{
			name:    "zero birthdate rejected",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Birthdate = tt.birthdate
			err := validatorx.ValidateStruct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
