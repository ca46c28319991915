package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchStatusTransitions(t *testing.T) {
	assert.True(t, BatchUngrouped.CanTransition(BatchGrouped))
	assert.True(t, BatchUngrouped.CanTransition(BatchArchived))
	assert.True(t, BatchGrouped.CanTransition(BatchInProcess))
	assert.True(t, BatchInProcess.CanTransition(BatchArchived))

	assert.False(t, BatchGrouped.CanTransition(BatchUngrouped))
	assert.False(t, BatchArchived.CanTransition(BatchUngrouped))
	assert.False(t, BatchUngrouped.CanTransition(BatchInProcess))
}

func TestParseBatchStatusAcceptsLegacyLabel(t *testing.T) {
	parsed, err := ParseBatchStatus("Grouped for Assembly")
	require.NoError(t, err)
	assert.Equal(t, BatchGrouped, parsed)

	parsed, err = ParseBatchStatus("in_process")
	require.NoError(t, err)
	assert.Equal(t, BatchInProcess, parsed)

	_, err = ParseBatchStatus("floating")
	require.Error(t, err)
}

func TestAssemblyAndPlatingAreOneWay(t *testing.T) {
	assert.True(t, AssemblyProcessing.CanTransition(AssemblyPlating))
	assert.False(t, AssemblyPlating.CanTransition(AssemblyProcessing))

	assert.True(t, PlatingPending.CanTransition(PlatingCompleted))
	assert.False(t, PlatingCompleted.CanTransition(PlatingPending))
}

func TestRequestStatusResolvesOnce(t *testing.T) {
	assert.True(t, RequestPending.CanTransition(RequestApproved))
	assert.True(t, RequestPending.CanTransition(RequestRejected))
	assert.False(t, RequestApproved.CanTransition(RequestRejected))
	assert.False(t, RequestRejected.CanTransition(RequestApproved))
}

func TestValidSets(t *testing.T) {
	assert.True(t, QualityVerdict("OK").Valid())
	assert.True(t, QualityVerdict("NG").Valid())
	assert.False(t, QualityVerdict("ok").Valid())

	assert.True(t, RequestType("add").Valid())
	assert.True(t, RequestType("edit").Valid())
	assert.True(t, RequestType("delete").Valid())
	assert.False(t, RequestType("merge").Valid())

	assert.True(t, ProductInStock.Valid())
	assert.True(t, ProductDefective.Valid())
	assert.False(t, ProductStatus("lost").Valid())
}
