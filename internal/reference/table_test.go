package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func testManeuvers(t *testing.T) *Table[Maneuver] {
	t.Helper()
	table, err := NewTable("maneuvers", []Maneuver{
		{Ref: Ref{ID: "parry", Name: "Parry"}},
		{Ref: Ref{ID: "riposte", Name: "Riposte"}},
		{Ref: Ref{ID: "rally", Name: "Rally"}},
	})
	require.NoError(t, err)
	return table
}

func TestTable_Lookup(t *testing.T) {
	table := testManeuvers(t)

	m, ok := table.Get("riposte")
	require.True(t, ok)
	assert.Equal(t, "Riposte", m.Name)

	m, ok = table.FindByName("Rally")
	require.True(t, ok)
	assert.Equal(t, "rally", m.ID)

	_, ok = table.FindByName("rally")
	assert.False(t, ok, "names are case-sensitive")

	_, ok = table.Get("missing")
	assert.False(t, ok)
	assert.False(t, table.Has("missing"))
	assert.Equal(t, 3, table.Len())
}

func TestTable_AllIsACopy(t *testing.T) {
	table := testManeuvers(t)

	all := table.All()
	all[0].Name = "changed"

	m, _ := table.Get("parry")
	assert.Equal(t, "Parry", m.Name)
	assert.Equal(t, "parry", table.All()[0].ID, "table order is kept")
}

func TestTable_ResolveKeepsUnresolved(t *testing.T) {
	table := testManeuvers(t)

	res := table.Resolve([]string{"rally", "renamed-maneuver", "parry", "gone"})

	require.Len(t, res.Found, 2)
	assert.Equal(t, "rally", res.Found[0].ID)
	assert.Equal(t, "parry", res.Found[1].ID)
	assert.Equal(t, []string{"renamed-maneuver", "gone"}, res.Unresolved)

	empty := table.Resolve(nil)
	assert.Empty(t, empty.Found)
	assert.Empty(t, empty.Unresolved)
}

func TestNewTable_RejectsDuplicates(t *testing.T) {
	_, err := NewTable("maneuvers", []Maneuver{
		{Ref: Ref{ID: "parry", Name: "Parry"}},
		{Ref: Ref{ID: "parry", Name: "Parry Again"}},
		{Ref: Ref{ID: "riposte", Name: "Parry"}},
		{Ref: Ref{ID: "", Name: ""}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	msg := err.Error()
	assert.Contains(t, msg, `duplicate id "parry"`)
	assert.Contains(t, msg, `duplicate name "Parry"`)
	assert.Contains(t, msg, "maneuvers[3].id: is required")
	assert.Contains(t, msg, "maneuvers[3].name: is required")
}
