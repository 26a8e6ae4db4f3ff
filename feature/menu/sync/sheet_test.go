package sync

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	menuID    = "7f59f0a0-db4a-4b8f-9c99-056e8b9a2a01"
	submenuID = "8a6aa0b1-ec5b-4c90-ad00-167f9c0b3b02"
	dishID    = "9b7bb1c2-fd6c-4da1-be11-27809d1c4c03"
)

func TestParseRows_FullHierarchy(t *testing.T) {
	rows := [][]string{
		{menuID, "Drinks", "Hot and cold drinks"},
		{"", submenuID, "Coffee", "Espresso based"},
		{"", "", dishID, "Latte", "With steamed milk", "4.50"},
	}

	sheet := ParseRows(rows, zap.NewNop())

	require.Len(t, sheet.Menus, 1)
	require.Len(t, sheet.Submenus, 1)
	require.Len(t, sheet.Dishes, 1)
	assert.Zero(t, sheet.Skipped)

	assert.Equal(t, MenuRecord{
		ID: menuID, Title: "Drinks", Description: "Hot and cold drinks",
	}, sheet.Menus[0])

	assert.Equal(t, SubmenuRecord{
		ID: submenuID, Title: "Coffee", Description: "Espresso based", MenuID: menuID,
	}, sheet.Submenus[0])

	dish := sheet.Dishes[0]
	assert.Equal(t, dishID, dish.ID)
	assert.Equal(t, "Latte", dish.Title)
	assert.Equal(t, submenuID, dish.SubmenuID)
	assert.Equal(t, menuID, dish.MenuID)
	assert.True(t, dish.Price.Equal(decimal.RequireFromString("4.50")))
	assert.Nil(t, dish.Discount)
}

func TestParseRows_DiscountComputation(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		percent    string
		discounted string
	}{
		{name: "25 percent off 20.00", price: "20.00", percent: "25", discounted: "15.00"},
		{name: "zero percent means no discount", price: "20.00", percent: "0"},
		{name: "hundred percent means no discount", price: "20.00", percent: "100"},
		{name: "empty cell means no discount", price: "20.00", percent: ""},
		{name: "rounding to two places", price: "9.99", percent: "33", discounted: "6.69"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := [][]string{
				{menuID, "Drinks", "Desc"},
				{"", submenuID, "Coffee", "Desc"},
				{"", "", dishID, "Latte", "Desc", tt.price, tt.percent},
			}

			sheet := ParseRows(rows, zap.NewNop())

			require.Len(t, sheet.Dishes, 1)
			dish := sheet.Dishes[0]
			assert.True(t, dish.Price.Equal(decimal.RequireFromString(tt.price)))

			if tt.discounted == "" {
				assert.Nil(t, dish.Discount)
			} else {
				require.NotNil(t, dish.Discount)
				assert.True(t, dish.Discount.Equal(decimal.RequireFromString(tt.discounted)),
					"got %s", dish.Discount)
			}
		})
	}
}

func TestParseRows_SkipsMalformedRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		menus   int
		subs    int
		dishes  int
		skipped int
	}{
		{
			name: "menu id not a uuid",
			rows: [][]string{
				{"not-a-uuid", "Title", "Desc"},
			},
			skipped: 1,
		},
		{
			name: "submenu without active menu",
			rows: [][]string{
				{"", submenuID, "Coffee", "Desc"},
			},
			skipped: 1,
		},
		{
			name: "dish without active submenu",
			rows: [][]string{
				{menuID, "Drinks", "Desc"},
				{"", "", dishID, "Latte", "Desc", "4.50"},
			},
			menus:   1,
			skipped: 1,
		},
		{
			name: "dish price not a decimal",
			rows: [][]string{
				{menuID, "Drinks", "Desc"},
				{"", submenuID, "Coffee", "Desc"},
				{"", "", dishID, "Latte", "Desc", "cheap"},
			},
			menus:   1,
			subs:    1,
			skipped: 1,
		},
		{
			name: "discount outside percentage range",
			rows: [][]string{
				{menuID, "Drinks", "Desc"},
				{"", submenuID, "Coffee", "Desc"},
				{"", "", dishID, "Latte", "Desc", "4.50", "120"},
			},
			menus:   1,
			subs:    1,
			skipped: 1,
		},
		{
			name: "empty title skips menu",
			rows: [][]string{
				{menuID, "", "Desc"},
			},
			skipped: 1,
		},
		{
			name: "blank row changes nothing",
			rows: [][]string{
				{menuID, "Drinks", "Desc"},
				{"", "", ""},
				{"", submenuID, "Coffee", "Desc"},
			},
			menus: 1,
			subs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := ParseRows(tt.rows, zap.NewNop())

			assert.Len(t, sheet.Menus, tt.menus)
			assert.Len(t, sheet.Submenus, tt.subs)
			assert.Len(t, sheet.Dishes, tt.dishes)
			assert.Equal(t, tt.skipped, sheet.Skipped)
		})
	}
}

func TestParseRows_MalformedMenuResetsContext(t *testing.T) {
	// The bad menu row must clear the previous menu context so the submenu
	// below it cannot attach to "Drinks".
	rows := [][]string{
		{menuID, "Drinks", "Desc"},
		{"not-a-uuid", "Broken", "Desc"},
		{"", submenuID, "Coffee", "Desc"},
	}

	sheet := ParseRows(rows, zap.NewNop())

	assert.Len(t, sheet.Menus, 1)
	assert.Empty(t, sheet.Submenus)
	assert.Equal(t, 2, sheet.Skipped)
}

func TestParseRows_ShortRows(t *testing.T) {
	// Worksheet rows come back ragged; missing trailing cells are empty.
	rows := [][]string{
		{menuID, "Drinks"},
		{menuID, "Drinks", "Desc"},
		{"", submenuID, "Coffee", "Desc"},
		{"", "", dishID, "Latte", "Desc"},
	}

	sheet := ParseRows(rows, zap.NewNop())

	assert.Len(t, sheet.Menus, 1)
	assert.Len(t, sheet.Submenus, 1)
	assert.Empty(t, sheet.Dishes)
	assert.Equal(t, 2, sheet.Skipped)
}

func TestDishEqual(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	discounted := decimal.RequireFromString("7.50")
	base := DishRecord{
		ID: dishID, Title: "Latte", Description: "Desc",
		Price: price, SubmenuID: submenuID, MenuID: menuID,
	}

	t.Run("equal without discounts", func(t *testing.T) {
		assert.True(t, dishEqual(base, base))
	})

	t.Run("discount presence differs", func(t *testing.T) {
		withDiscount := base
		withDiscount.Discount = &discounted
		assert.False(t, dishEqual(base, withDiscount))
	})

	t.Run("equal with same discount", func(t *testing.T) {
		a, b := base, base
		a.Discount = &discounted
		other := decimal.RequireFromString("7.50")
		b.Discount = &other
		assert.True(t, dishEqual(a, b))
	})

	t.Run("price compares by value not representation", func(t *testing.T) {
		a, b := base, base
		b.Price = decimal.RequireFromString("10")
		assert.True(t, dishEqual(a, b))
	})
}
