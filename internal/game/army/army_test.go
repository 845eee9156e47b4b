package army_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/hex"
	"github.com/cory-johannsen/hexbattle/internal/testutil"
)

func amounts(a *army.Army) []int {
	var out []int
	for _, s := range a.AllTroops() {
		if s == nil {
			out = append(out, 0)
			continue
		}
		out = append(out, s.CurrentAmount)
	}
	return out
}

func TestNew_PanicsOnZeroSlots(t *testing.T) {
	assert.Panics(t, func() { army.New(army.Attacker, 0) })
}

func TestSide(t *testing.T) {
	assert.Equal(t, "attacker", army.Attacker.String())
	assert.Equal(t, "defender", army.Defender.String())
	assert.Equal(t, army.Defender, army.Attacker.Opponent())
	assert.Equal(t, army.Attacker, army.Defender.Opponent())
}

func TestNewTroopStack(t *testing.T) {
	s := army.NewTroopStack(testutil.Spearman(), 7, army.Defender)
	assert.Equal(t, 7, s.Amount)
	assert.Equal(t, 7, s.CurrentAmount)
	assert.Equal(t, 10, s.CurrentHealth)
	assert.Equal(t, army.Defender, s.Side)
	assert.True(t, s.IsAlive())
	assert.Equal(t, 70, s.TotalHealth())

	s.CurrentHealth = 4
	assert.Equal(t, 64, s.TotalHealth())
	s.CurrentAmount = 0
	assert.False(t, s.IsAlive())
	assert.Equal(t, 0, s.TotalHealth())
}

func TestFillArmy_DistributesRemainder(t *testing.T) {
	a := army.New(army.Attacker, army.DefaultSlots)
	require.NoError(t, a.FillArmy(testutil.Spearman(), 10))
	assert.Equal(t, []int{3, 3, 2, 2}, amounts(a))
	for _, s := range a.AllTroops() {
		assert.Equal(t, army.Attacker, s.Side)
		assert.Equal(t, "spearman", s.Type.ID)
	}
}

func TestFillArmy_SmallTotalLeavesSlotsEmpty(t *testing.T) {
	a := army.New(army.Attacker, 4)
	require.NoError(t, a.FillArmy(testutil.Spearman(), 2))
	assert.Equal(t, []int{1, 1, 0, 0}, amounts(a))
	_, ok := a.TroopAt(2)
	assert.False(t, ok)
}

func TestFillArmy_RejectsNonPositiveWithoutMutation(t *testing.T) {
	a := army.New(army.Attacker, 4)
	require.NoError(t, a.FillArmy(testutil.Spearman(), 10))
	before := a.AllTroops()

	assert.Error(t, a.FillArmy(testutil.Archer(), -1))
	assert.Error(t, a.FillArmy(testutil.Archer(), 0))
	assert.Equal(t, before, a.AllTroops())
	assert.Equal(t, []int{3, 3, 2, 2}, amounts(a))
}

func TestFillArmy_Property_SlotsDifferByAtMostOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		slots := rapid.IntRange(1, 8).Draw(rt, "slots")
		total := rapid.IntRange(slots, 500).Draw(rt, "total")
		a := army.New(army.Defender, slots)
		require.NoError(rt, a.FillArmy(testutil.Spearman(), total))

		sum, lo, hi := 0, total, 0
		for _, n := range amounts(a) {
			sum += n
			lo = min(lo, n)
			hi = max(hi, n)
		}
		assert.Equal(rt, total, sum)
		assert.LessOrEqual(rt, hi-lo, 1)
	})
}

func TestAddUnits(t *testing.T) {
	a := army.New(army.Attacker, 2)
	spear, archer, horse := testutil.Spearman(), testutil.Archer(), testutil.Horseman()

	assert.True(t, a.AddUnits(spear, 5))
	assert.True(t, a.AddUnits(spear, 3))
	s, ok := a.TroopAt(0)
	require.True(t, ok)
	assert.Equal(t, 8, s.Amount)
	assert.Equal(t, 8, s.CurrentAmount)

	assert.True(t, a.AddUnits(archer, 4))
	assert.False(t, a.AddUnits(horse, 1), "no free slot and no matching stack")
	assert.True(t, a.AddUnits(archer, 1), "matching stack still merges when full")

	assert.False(t, a.AddUnits(spear, 0))
	assert.False(t, a.AddUnits(spear, -3))
	assert.Equal(t, []int{8, 5}, amounts(a))
}

func TestSlotManipulation_OutOfRangeIsNoOp(t *testing.T) {
	a := army.New(army.Attacker, 3)
	require.NoError(t, a.FillArmy(testutil.Spearman(), 9))
	before := amounts(a)

	a.RemoveTroopAt(-1)
	a.RemoveTroopAt(3)
	a.SetTroopAt(5, army.NewTroopStack(testutil.Archer(), 1, army.Attacker))
	a.SwapTroops(0, 7)
	a.SwapTroops(-2, 1)
	_, ok := a.TroopAt(99)

	assert.False(t, ok)
	assert.Equal(t, before, amounts(a))
}

func TestSlotManipulation(t *testing.T) {
	a := army.New(army.Defender, 3)
	spear := army.NewTroopStack(testutil.Spearman(), 4, army.Attacker)
	archer := army.NewTroopStack(testutil.Archer(), 2, army.Defender)

	a.SetTroopAt(0, spear)
	a.SetTroopAt(2, archer)
	assert.Equal(t, army.Defender, spear.Side, "stack takes the army's side")
	assert.True(t, a.Contains(spear))
	assert.Equal(t, 2, a.IndexOf(archer))

	a.SwapTroops(0, 2)
	assert.Equal(t, []*army.TroopStack{archer, nil, spear}, a.AllTroops())

	a.RemoveTroopAt(2)
	assert.False(t, a.Contains(spear))
	assert.Equal(t, -1, a.IndexOf(spear))
	assert.Equal(t, -1, a.IndexOf(nil))

	a.SetTroopAt(0, nil)
	assert.False(t, a.HasLivingTroops())
	slots := a.Slots()
	require.Len(t, slots, 3)
	for _, sl := range slots {
		assert.True(t, sl.Empty())
		assert.Nil(t, sl.Stack())
	}
}

func TestSetTroopAt_MovesStackAlreadyInArmy(t *testing.T) {
	a := army.New(army.Attacker, 3)
	spear := army.NewTroopStack(testutil.Spearman(), 4, army.Attacker)

	a.SetTroopAt(0, spear)
	a.SetTroopAt(1, spear)
	assert.Equal(t, []*army.TroopStack{nil, spear, nil}, a.AllTroops())
	assert.Len(t, a.Living(), 1)

	a.SetTroopAt(1, spear)
	assert.Equal(t, 1, a.IndexOf(spear), "re-setting the same slot keeps it")
}

func TestSetTroopAt_Property_StackHeldOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := army.New(army.Attacker, 4)
		stacks := []*army.TroopStack{
			army.NewTroopStack(testutil.Spearman(), 3, army.Attacker),
			army.NewTroopStack(testutil.Archer(), 3, army.Attacker),
		}
		ops := rapid.IntRange(1, 20).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			slot := rapid.IntRange(0, 3).Draw(rt, "slot")
			s := rapid.SampledFrom(stacks).Draw(rt, "stack")
			a.SetTroopAt(slot, s)
		}
		for _, s := range stacks {
			held := 0
			for _, other := range a.AllTroops() {
				if other == s {
					held++
				}
			}
			assert.LessOrEqual(rt, held, 1)
		}
	})
}

func TestLiving(t *testing.T) {
	a := army.New(army.Attacker, 3)
	require.NoError(t, a.FillArmy(testutil.Spearman(), 6))
	dead, _ := a.TroopAt(1)
	dead.CurrentAmount = 0

	living := a.Living()
	require.Len(t, living, 2)
	assert.NotContains(t, living, dead)
	assert.True(t, a.HasLivingTroops())
}

func TestFoodMaintenance(t *testing.T) {
	a := army.New(army.Attacker, 3)
	require.True(t, a.AddUnits(testutil.Spearman(), 30))
	require.True(t, a.AddUnits(testutil.Militia(), 15))

	assert.InDelta(t, 1.5, a.FoodMaintenance(false), 1e-9)
	assert.InDelta(t, 1.0, a.FoodMaintenance(true), 1e-9)

	s, _ := a.TroopAt(0)
	s.CurrentAmount = 12
	assert.InDelta(t, 0.4, a.FoodMaintenance(true), 1e-9)
}

func TestClone_DeepCopiesMutableState(t *testing.T) {
	a := army.New(army.Attacker, 2)
	require.NoError(t, a.FillArmy(testutil.Spearman(), 8))
	orig, _ := a.TroopAt(0)
	orig.Position = hex.Coord{Q: 1, R: 2}

	cp := a.Clone()
	copied, ok := cp.TroopAt(0)
	require.True(t, ok)
	assert.NotSame(t, orig, copied)
	assert.Same(t, orig.Type, copied.Type, "unit type is shared")
	assert.Equal(t, *orig, *copied)

	copied.CurrentAmount = 1
	copied.CurrentHealth = 3
	assert.Equal(t, 4, orig.CurrentAmount)
	assert.Equal(t, 10, orig.CurrentHealth)
	assert.False(t, a.Contains(copied))
	assert.Equal(t, a.Side(), cp.Side())
	assert.Equal(t, a.MaxSlots(), cp.MaxSlots())
}
