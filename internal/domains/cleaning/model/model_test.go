package model_test

import (
	"testing"

	"pms/internal/domains/cleaning/model"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		current string
		want    string
		ok      bool
	}{
		{model.StatusPending, model.StatusInProgress, true},
		{model.StatusScheduled, model.StatusInProgress, true},
		{model.StatusInProgress, model.StatusCompleted, true},
		{model.StatusCompleted, model.StatusVerified, true},
		{model.StatusVerified, "", false},
		{"archived", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			got, ok := model.Next(tt.current)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestStampField(t *testing.T) {
	assert.Equal(t, model.FieldStartedAt, model.StampField(model.StatusInProgress))
	assert.Equal(t, model.FieldCompletedAt, model.StampField(model.StatusCompleted))
	assert.Equal(t, model.FieldVerifiedAt, model.StampField(model.StatusVerified))
	assert.Empty(t, model.StampField(model.StatusPending))
}
