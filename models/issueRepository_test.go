package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Malformed identifiers fold into the not-found outcome before any collection
// access, so a zero-value repository is enough to pin the contract.

func TestUpdateStatusMalformedIDIsNotFound(t *testing.T) {
	r := &IssueRepository{}

	updated, err := r.UpdateStatus(context.Background(), "not-a-hex-id", StatusVerified)

	assert.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateAchievementMalformedIDIsNotFound(t *testing.T) {
	r := &IssueRepository{}

	// The write is attempted for any well-formed identifier regardless of the
	// issue's status; only the identifier itself is screened here.
	updated, err := r.UpdateAchievement(context.Background(), "12345", "Pothole filled and road resurfaced.")

	assert.NoError(t, err)
	assert.False(t, updated)
}

func TestGetByIDMalformedIDIsNotFound(t *testing.T) {
	r := &IssueRepository{}

	issue, err := r.GetByID(context.Background(), "not-a-hex-id")

	assert.NoError(t, err)
	assert.Nil(t, issue)
}
