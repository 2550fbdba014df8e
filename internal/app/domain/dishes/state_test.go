package dishes

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-supra/internal/app/models"
)

func TestState_Initial(t *testing.T) {
	snap := NewState().Snapshot()

	assert.Equal(t, models.ViewCards, snap.View)
	assert.Equal(t, models.TabBest, snap.Tab)
	assert.NotNil(t, snap.Dishes)
	assert.Empty(t, snap.Dishes)
	assert.False(t, snap.Loaded)
}

func TestState_QueryAndCanonicalList(t *testing.T) {
	st := NewState()
	st.SetQuery("ყველ")
	st.SetCanonicalList(sampleDishes())

	snap := st.Snapshot()
	assert.Equal(t, []string{"dish_001", "dish_002"}, ids(snap.Dishes))
	assert.Equal(t, 3, snap.Total)
	assert.True(t, snap.Loaded)
	assert.Equal(t, "ყველ", snap.Heading())

	st.SetQuery("")
	assert.Len(t, st.Snapshot().Dishes, 3)
}

func TestState_ViewToggleKeepsResults(t *testing.T) {
	st := NewState()
	st.SetCanonicalList(sampleDishes())
	st.SetQuery("ყველ")
	before := st.Snapshot().Dishes

	st.SetView(models.ViewMap)
	assert.Equal(t, models.ViewMap, st.Snapshot().View)
	assert.Equal(t, before, st.Snapshot().Dishes)

	st.SetView(models.ViewCards)
	assert.Equal(t, before, st.Snapshot().Dishes)
}

func TestState_ApplySearchReplacesVerbatim(t *testing.T) {
	st := NewState()
	st.SetCanonicalList(sampleDishes())
	st.SetQuery("ყველ")

	response := []models.Dish{{ID: "ai_1", Name: "nothing like the query"}}
	token := st.BeginSearch()
	require.True(t, st.ApplySearch(token, "something cheesy", response))

	snap := st.Snapshot()
	assert.Equal(t, []string{"ai_1"}, ids(snap.Dishes))
	assert.Equal(t, 1, snap.Total)
	assert.Equal(t, "", snap.Query)
	assert.Equal(t, "something cheesy", snap.Heading())
}

func TestState_StaleSearchIsDiscarded(t *testing.T) {
	st := NewState()
	st.SetCanonicalList(sampleDishes())

	older := st.BeginSearch()
	newer := st.BeginSearch()

	assert.True(t, st.ApplySearch(newer, "new", []models.Dish{{ID: "new"}}))
	assert.False(t, st.ApplySearch(older, "old", []models.Dish{{ID: "old"}}))

	assert.Equal(t, []string{"new"}, ids(st.Snapshot().Dishes))
}

func TestState_StaleLoadIsDiscarded(t *testing.T) {
	st := NewState()
	load := st.BeginSearch()
	search := st.BeginSearch()

	require.True(t, st.ApplySearch(search, "q", []models.Dish{{ID: "ai"}}))
	assert.False(t, st.ApplyLoad(load, sampleDishes()))
	assert.False(t, st.FailLoad(load))

	assert.Equal(t, []string{"ai"}, ids(st.Snapshot().Dishes))
}

func TestState_FailLoadKeepsList(t *testing.T) {
	st := NewState()
	st.SetCanonicalList(sampleDishes())

	token := st.BeginSearch()
	require.True(t, st.FailLoad(token))

	snap := st.Snapshot()
	assert.True(t, snap.Loaded)
	assert.True(t, snap.LoadFailed)
	assert.Len(t, snap.Dishes, 3)
}

func TestState_ResetInvalidatesInFlight(t *testing.T) {
	st := NewState()
	token := st.BeginSearch()
	st.SetView(models.ViewMap)

	st.Reset()

	assert.False(t, st.ApplySearch(token, "q", []models.Dish{{ID: "late"}}))
	snap := st.Snapshot()
	assert.Equal(t, models.ViewCards, snap.View)
	assert.Empty(t, snap.Dishes)
	assert.False(t, snap.Loaded)
}

func TestState_SnapshotIsACopy(t *testing.T) {
	st := NewState()
	st.SetCanonicalList(sampleDishes())

	snap := st.Snapshot()
	snap.Dishes[0].Name = "changed"

	assert.NotEqual(t, "changed", st.Snapshot().Dishes[0].Name)
}

func TestState_ConcurrentAccess(t *testing.T) {
	st := NewState()
	st.SetCanonicalList(sampleDishes())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			st.SetQuery("ყველ")
		}()
		go func() {
			defer wg.Done()
			token := st.BeginSearch()
			st.ApplySearch(token, "q", sampleDishes())
		}()
		go func() {
			defer wg.Done()
			_ = st.Snapshot()
		}()
	}
	wg.Wait()

	assert.True(t, st.Snapshot().Loaded)
}
