package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D1CED/octo/pkg/model"
	"github.com/D1CED/octo/pkg/repository"
)

func TestIconFor(t *testing.T) {
	testCases := []struct {
		status   repository.Status
		required bool
		explicit bool
		want     model.Icon
	}{
		{repository.StatusForeign, true, true, model.IconForeign},
		{repository.StatusForeign, false, false, model.IconForeign},
		{repository.StatusForeignOutdated, false, true, model.IconForeignOutdated},
		{repository.StatusOutdated, true, false, model.IconOutdated},
		{repository.StatusOutdated, true, true, model.IconOutdatedByUser},
		{repository.StatusNewer, false, false, model.IconNewer},
		{repository.StatusNewer, false, true, model.IconNewerByUser},
		{repository.StatusInstalled, true, false, model.IconInstalled},
		{repository.StatusInstalled, true, true, model.IconInstalledByUser},
		{repository.StatusInstalled, false, false, model.IconInstalledUnrequired},
		{repository.StatusInstalled, false, true, model.IconInstalledUnrequiredByUser},
		{repository.StatusNotInstalled, false, true, model.IconNotInstalled},
	}

	for _, tc := range testCases {
		got := model.IconFor(tc.status, tc.required, tc.explicit)
		assert.Equal(t, tc.want, got, "%s required=%v explicit=%v", tc.status, tc.required, tc.explicit)
	}
}

func TestIconForUnknownStatus(t *testing.T) {
	assert.Panics(t, func() { model.IconFor(repository.Status(42), false, false) })
}
