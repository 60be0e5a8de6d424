package services_test

import (
	"testing"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/session"
	"batching/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findItem(t *testing.T, items []services.ChecklistItem, requirement string) services.ChecklistItem {
	t.Helper()
	for _, item := range items {
		if item.Requirement == requirement {
			return item
		}
	}
	t.Fatalf("checklist item %q not found", requirement)
	return services.ChecklistItem{}
}

func TestReviewChecklist_Build(t *testing.T) {
	checklist := services.NewReviewChecklist()

	t.Run("empty session should fail every blocking item", func(t *testing.T) {
		sess, err := session.NewWorkflowSession(kernel.NewUUID())
		require.NoError(t, err)

		items := checklist.Build(sess)

		for _, item := range items {
			if item.Blocking {
				assert.False(t, item.Satisfied, item.Requirement)
			}
		}
		assert.False(t, checklist.IsComplete(sess))
	})

	t.Run("committable session should satisfy all blocking items", func(t *testing.T) {
		sess := createCommittableSession(t)

		items := checklist.Build(sess)

		for _, item := range items {
			if item.Blocking {
				assert.True(t, item.Satisfied, item.Requirement)
			}
		}
		assert.True(t, checklist.IsComplete(sess))
	})

	t.Run("optional items should not block completion", func(t *testing.T) {
		sess := createCommittableSession(t)
		require.True(t, sess.AddToWorkingSet(createStop(t, "F9")))

		items := checklist.Build(sess)

		assert.False(t, findItem(t, items, "all facilities placed in slots").Satisfied)
		assert.False(t, findItem(t, items, "route optimized").Satisfied)
		assert.False(t, findItem(t, items, "driver assigned").Satisfied)
		assert.True(t, checklist.IsComplete(sess))
	})

	t.Run("sub option should only matter for the ready method", func(t *testing.T) {
		sess := createCommittableSession(t)
		sess.SetSourceMethod("direct")
		sess.SetSourceSubOption("")

		assert.True(t, findItem(t, checklist.Build(sess), "source sub-option chosen").Satisfied)

		sess.SetSourceMethod(session.SourceMethodReady)

		assert.False(t, findItem(t, checklist.Build(sess), "source sub-option chosen").Satisfied)
	})

	t.Run("nil session should produce no items", func(t *testing.T) {
		assert.Nil(t, checklist.Build(nil))
	})
}
