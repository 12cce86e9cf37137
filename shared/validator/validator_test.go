package validator_test

import (
	"strings"
	"testing"

	"pms/shared/validator"

	"github.com/stretchr/testify/assert"
)

type expenseLike struct {
	Date     string  `json:"date"     validate:"required,day"`
	Category string  `json:"category" validate:"required,oneof=maintenance supplies utilities"`
	Amount   float64 `json:"amount"   validate:"gt=0"`
	Email    string  `json:"email"    validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    expenseLike
		wantErr string
	}{
		{
			name: "valid",
			data: expenseLike{Date: "2025-03-01", Category: "supplies", Amount: 12.5},
		},
		{
			name:    "bad date",
			data:    expenseLike{Date: "03/01/2025", Category: "supplies", Amount: 12.5},
			wantErr: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:    "non positive amount",
			data:    expenseLike{Date: "2025-03-01", Category: "supplies", Amount: 0},
			wantErr: "amount must be greater than 0",
		},
		{
			name:    "unknown category",
			data:    expenseLike{Date: "2025-03-01", Category: "travel", Amount: 3},
			wantErr: "category must be one of maintenance supplies utilities",
		},
		{
			name:    "invalid email",
			data:    expenseLike{Date: "2025-03-01", Category: "supplies", Amount: 3, Email: "nope"},
			wantErr: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidate_DecodesJSON(t *testing.T) {
	var out expenseLike

	err := validator.Validate(strings.NewReader(`{"date":"2025-03-01","category":"utilities","amount":40}`), &out)

	assert.NoError(t, err)
	assert.Equal(t, "utilities", out.Category)

	err = validator.Validate(strings.NewReader(`{"date":`), &out)
	assert.Error(t, err)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-01-10", "day"))
	assert.Error(t, validator.ValidateVar("2025-13-10", "day"))
}

type avatarLike struct {
	Avatar string `validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestMimetypeValidation(t *testing.T) {
	ok := avatarLike{Avatar: "data:image/png;base64,iVBORw0KGgo="}
	assert.NoError(t, validator.ValidateStruct(&ok))

	wrong := avatarLike{Avatar: "data:text/plain;base64,aGVsbG8="}
	assert.Error(t, validator.ValidateStruct(&wrong))
}

func TestTimestampMessage(t *testing.T) {
	type schedule struct {
		At string `json:"scheduled_for" validate:"datetime=2006-01-02T15:04"`
	}

	err := validator.ValidateStruct(&schedule{At: "tomorrow"})
	assert.EqualError(t, err, "scheduled_for must be a timestamp in 2006-01-02T15:04 format")
}
