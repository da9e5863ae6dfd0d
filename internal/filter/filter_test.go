package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ticketd/ticketd/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func sampleTicket() domain.Ticket {
	return domain.Ticket{
		ID:           1,
		Title:        "Test Title",
		Body:         "Test Body",
		Created:      "1688587842815",
		LastModified: "1688587842815",
		Labels:       []domain.Label{domain.LabelBug, domain.LabelInProgress},
		AssignedUser: ptr(int64(1)),
		Status:       domain.StatusOpen,
	}
}

func TestEmptyFilterMatchesEverything(t *testing.T) {
	ticket := sampleTicket()
	assert.True(t, Filter{}.Matches(&ticket))
}

func TestTitleSubstringMatch(t *testing.T) {
	ticket := sampleTicket()

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"full title", "Test Title", true},
		{"substring", "st Ti", true},
		{"case sensitive", "test title", false},
		{"no match", "Other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesTitle(&tt.title, &ticket))
		})
	}
}

func TestLabelFilterRequiresEveryLabel(t *testing.T) {
	ticket := sampleTicket()

	assert.True(t, MatchesLabels([]domain.Label{domain.LabelInProgress, domain.LabelBug}, &ticket),
		"order of requested labels must not matter")
	assert.True(t, MatchesLabels([]domain.Label{domain.LabelBug}, &ticket))
	assert.True(t, MatchesLabels(nil, &ticket))
	assert.False(t, MatchesLabels([]domain.Label{domain.LabelBug, domain.LabelFeature}, &ticket))
}

func TestAssignedUserExactMatch(t *testing.T) {
	ticket := sampleTicket()

	assert.True(t, MatchesAssignedUser(ptr(int64(1)), &ticket))
	assert.False(t, MatchesAssignedUser(ptr(int64(999)), &ticket))
	assert.True(t, MatchesAssignedUser(nil, &ticket))
}

func TestUnassignedTicketNeverMatchesAssigneeCriterion(t *testing.T) {
	ticket := sampleTicket()
	ticket.AssignedUser = nil

	// An unassigned ticket is not "assigned to user 0".
	assert.False(t, MatchesAssignedUser(ptr(int64(0)), &ticket))
	assert.False(t, MatchesAssignedUser(ptr(int64(1)), &ticket))
	assert.True(t, MatchesAssignedUser(nil, &ticket))
}

func TestStatusMatch(t *testing.T) {
	ticket := sampleTicket()

	assert.True(t, MatchesStatus(ptr(domain.StatusOpen), &ticket))
	assert.False(t, MatchesStatus(ptr(domain.StatusClosed), &ticket))
	assert.True(t, MatchesStatus(nil, &ticket))
}

func TestApply(t *testing.T) {
	store := []domain.Ticket{sampleTicket()}

	t.Run("label pair matches the one row", func(t *testing.T) {
		result := Apply(Filter{Labels: []domain.Label{domain.LabelInProgress, domain.LabelBug}}, store)
		assert.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].ID)
	})

	t.Run("unknown assignee yields empty slice", func(t *testing.T) {
		result := Apply(Filter{AssignedUser: ptr(int64(999))}, store)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("no criteria returns every ticket", func(t *testing.T) {
		result := Apply(Filter{}, store)
		assert.Len(t, result, len(store))
	})

	t.Run("all criteria must hold", func(t *testing.T) {
		f := Filter{
			Title:        ptr("Test"),
			AssignedUser: ptr(int64(1)),
			Labels:       []domain.Label{domain.LabelBug},
			Status:       ptr(domain.StatusClosed),
		}
		assert.Empty(t, Apply(f, store))
	})
}
