package sync

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MenuRecord is one top-level row of the worksheet, or one online menu.
type MenuRecord struct {
	ID          string
	Title       string
	Description string
}

// RecordID implements reconcile.Record.
func (m MenuRecord) RecordID() string { return m.ID }

// SubmenuRecord is one second-level row, parented to the menu row above it.
type SubmenuRecord struct {
	ID          string
	Title       string
	Description string
	MenuID      string
}

// RecordID implements reconcile.Record.
func (s SubmenuRecord) RecordID() string { return s.ID }

// DishRecord is one third-level row. Price is the raw listed price; Discount
// is the discounted price, nil when no discount applies. MenuID is carried
// for cache-key construction since dishes are keyed by both ancestors.
type DishRecord struct {
	ID          string
	Title       string
	Description string
	Price       decimal.Decimal
	Discount    *decimal.Decimal
	SubmenuID   string
	MenuID      string
}

// RecordID implements reconcile.Record.
func (d DishRecord) RecordID() string { return d.ID }

// ParsedSheet is the offline state declared by one worksheet snapshot.
type ParsedSheet struct {
	Menus    []MenuRecord
	Submenus []SubmenuRecord
	Dishes   []DishRecord
	Skipped  int
}

func menuEqual(a, b MenuRecord) bool {
	return a.Title == b.Title && a.Description == b.Description
}

func submenuEqual(a, b SubmenuRecord) bool {
	return a.Title == b.Title && a.Description == b.Description && a.MenuID == b.MenuID
}

func dishEqual(a, b DishRecord) bool {
	if a.Title != b.Title || a.Description != b.Description || a.SubmenuID != b.SubmenuID {
		return false
	}
	if !a.Price.Equal(b.Price) {
		return false
	}
	if (a.Discount == nil) != (b.Discount == nil) {
		return false
	}
	return a.Discount == nil || a.Discount.Equal(*b.Discount)
}

// cell returns the trimmed cell at index i, or "" when the row is shorter.
// Worksheet rows come back ragged: trailing empty cells are dropped.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func validID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseRows classifies worksheet rows into menu, submenu, and dish records.
//
// Rows are walked in document order with a small context state machine: a
// value in column 0 starts a menu and resets all context, a value in column 1
// starts a submenu under the current menu, a value in column 2 adds a dish
// under the current submenu. Any row that fails validation is skipped and
// logged; the sheet is hand edited, so a bad row must never abort the pass.
func ParseRows(rows [][]string, logger *zap.Logger) ParsedSheet {
	var sheet ParsedSheet
	var currentMenu, currentSubmenu string

	skip := func(n int, reason string) {
		sheet.Skipped++
		logger.Warn("sheet row skipped", zap.Int("row", n), zap.String("reason", reason))
	}

	for n, row := range rows {
		switch {
		case cell(row, 0) != "":
			// A menu row resets both levels of context even when malformed,
			// so stray children below it cannot attach to the previous menu.
			currentMenu, currentSubmenu = "", ""

			id, title, desc := cell(row, 0), cell(row, 1), cell(row, 2)
			if !validID(id) {
				skip(n, "menu id is not a valid uuid")
				continue
			}
			if title == "" || desc == "" {
				skip(n, "menu title or description is empty")
				continue
			}
			sheet.Menus = append(sheet.Menus, MenuRecord{ID: id, Title: title, Description: desc})
			currentMenu = id

		case cell(row, 1) != "":
			currentSubmenu = ""

			if currentMenu == "" {
				skip(n, "submenu row without an active menu")
				continue
			}
			id, title, desc := cell(row, 1), cell(row, 2), cell(row, 3)
			if !validID(id) {
				skip(n, "submenu id is not a valid uuid")
				continue
			}
			if title == "" || desc == "" {
				skip(n, "submenu title or description is empty")
				continue
			}
			sheet.Submenus = append(sheet.Submenus, SubmenuRecord{
				ID: id, Title: title, Description: desc, MenuID: currentMenu,
			})
			currentSubmenu = id

		case cell(row, 2) != "":
			if currentSubmenu == "" {
				skip(n, "dish row without an active submenu")
				continue
			}
			id, title, desc := cell(row, 2), cell(row, 3), cell(row, 4)
			if !validID(id) {
				skip(n, "dish id is not a valid uuid")
				continue
			}
			if title == "" || desc == "" {
				skip(n, "dish title or description is empty")
				continue
			}
			price, err := decimal.NewFromString(cell(row, 5))
			if err != nil {
				skip(n, "dish price is not a decimal")
				continue
			}
			price = price.Round(2)

			discount, ok := parseDiscount(price, cell(row, 6))
			if !ok {
				skip(n, "dish discount is not a percentage")
				continue
			}

			sheet.Dishes = append(sheet.Dishes, DishRecord{
				ID: id, Title: title, Description: desc,
				Price: price, Discount: discount,
				SubmenuID: currentSubmenu, MenuID: currentMenu,
			})

		default:
			// Fully blank leading columns: not a record, context unchanged.
		}
	}

	return sheet
}

// parseDiscount turns a percentage cell into a discounted price. An empty
// cell, 0%, and 100% all mean no discount. Values outside [0,100] or
// non-integers invalidate the row.
func parseDiscount(price decimal.Decimal, raw string) (*decimal.Decimal, bool) {
	if raw == "" {
		return nil, true
	}
	pct, err := strconv.Atoi(raw)
	if err != nil || pct < 0 || pct > 100 {
		return nil, false
	}
	if pct == 0 || pct == 100 {
		return nil, true
	}

	factor := decimal.NewFromInt(int64(pct)).Div(decimal.NewFromInt(100))
	discounted := price.Sub(price.Mul(factor)).Round(2)
	return &discounted, true
}
