package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsTotal(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 13)
	for _, c := range cats {
		info := Lookup(c)
		assert.NotEmpty(t, info.Name, c)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, info.Color, c)
	}
	assert.Equal(t, CategoryInfo{Name: "Food & Dining", Color: "#F59E0B"}, Lookup(Food))
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0] = "mutated"
	assert.Equal(t, Food, Categories()[0])
}

func TestLookupUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { Lookup("pets") })
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Housing")
	require.NoError(t, err)
	assert.Equal(t, Housing, c)

	_, err = ParseCategory("pets")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoriesFor(t *testing.T) {
	assert.Equal(t, []Category{Salary, Investment, Gifts, Other}, CategoriesFor(Income))

	expense := CategoriesFor(Expense)
	assert.Len(t, expense, 11)
	assert.NotContains(t, expense, Salary)
	assert.NotContains(t, expense, Investment)
	assert.Contains(t, expense, Gifts)
	assert.Contains(t, expense, Other)

	assert.Empty(t, CategoriesFor("transfer"))
}
