package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/model"
	"github.com/msouga/VerificacionCrediticia-sub001/internal/domain/valueobject"
)

func reconstructedCase(status valueobject.CaseFileStatus, version int) model.CaseFile {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return model.ReconstructCaseFile(
		"case-001", "default", "GOMC900101HDFLRR03", "ACM010101AB1",
		"CARLOS GOMEZ", "ACME SA DE CV",
		status, "", version, now, now,
	)
}

func TestCaseFile_TransitionsAdvanceVersion(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	cf := reconstructedCase(valueobject.CaseFileStatusOpen, 1)

	evaluating, err := cf.BeginEvaluation(now)
	require.NoError(t, err)
	assert.Equal(t, 2, evaluating.Version())
	assert.Equal(t, 1, cf.Version(), "the original copy is untouched")

	evaluated, err := evaluating.AttachEvaluation("eval-001", now)
	require.NoError(t, err)
	assert.Equal(t, 3, evaluated.Version())
	assert.Equal(t, "eval-001", evaluated.LatestEvaluationID())

	closed, err := evaluated.Close("resolved", now)
	require.NoError(t, err)
	assert.Equal(t, 4, closed.Version())
}

func TestCaseFile_BeginEvaluation(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("restarts from EVALUATING", func(t *testing.T) {
		// A run that died after persisting EVALUATING must be restartable.
		stuck := reconstructedCase(valueobject.CaseFileStatusEvaluating, 2)
		restarted, err := stuck.BeginEvaluation(now)
		require.NoError(t, err)
		assert.True(t, restarted.Status().Equal(valueobject.CaseFileStatusEvaluating))
		assert.Equal(t, 3, restarted.Version())
	})

	t.Run("re-evaluates from EVALUATED", func(t *testing.T) {
		done := reconstructedCase(valueobject.CaseFileStatusEvaluated, 3)
		again, err := done.BeginEvaluation(now)
		require.NoError(t, err)
		assert.True(t, again.Status().Equal(valueobject.CaseFileStatusEvaluating))
	})

	t.Run("rejects a closed case", func(t *testing.T) {
		closed := reconstructedCase(valueobject.CaseFileStatusClosed, 4)
		_, err := closed.BeginEvaluation(now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestCaseFile_AttachEvaluationRequiresEvaluating(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	open := reconstructedCase(valueobject.CaseFileStatusOpen, 1)
	_, err := open.AttachEvaluation("eval-001", now)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}
