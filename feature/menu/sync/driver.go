package sync

import (
	"context"
	"fmt"
	"time"

	"menu-manager/core/reconcile"

	"go.uber.org/zap"
)

// Report summarizes one reconciliation pass.
type Report struct {
	Menus       reconcile.Summary `json:"menus"`
	Submenus    reconcile.Summary `json:"submenus"`
	Dishes      reconcile.Summary `json:"dishes"`
	SkippedRows int               `json:"skipped_rows"`
	Failed      int               `json:"failed_actions"`
	Duration    string            `json:"duration"`
}

// Driver runs one full reconciliation pass: parse the worksheet, snapshot
// the catalog, diff the two, and apply the changes in dependency order.
//
// A failure reading either side aborts the pass before anything is mutated.
// A failure applying one action is logged and counted; the rest of the pass
// proceeds, and the next pass retries whatever is still out of sync. Passes
// are idempotent: with an unchanged worksheet the second pass applies
// nothing.
type Driver struct {
	source  Source
	catalog Catalog
	overlay *Overlay
	logger  *zap.Logger
	timeout time.Duration
}

// NewDriver creates a sync driver.
func NewDriver(source Source, catalog Catalog, overlay *Overlay, logger *zap.Logger, timeout time.Duration) *Driver {
	return &Driver{
		source:  source,
		catalog: catalog,
		overlay: overlay,
		logger:  logger,
		timeout: timeout,
	}
}

// Run executes one pass under the configured wall-clock timeout.
func (d *Driver) Run(ctx context.Context) (*Report, error) {
	started := time.Now()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	rows, err := d.source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("pass aborted: %w", err)
	}
	offline := ParseRows(rows, d.logger)

	trees, err := d.catalog.FullHierarchy(ctx)
	if err != nil {
		return nil, fmt.Errorf("pass aborted: %w", err)
	}
	onlineMenus, onlineSubmenus, onlineDishes := Snapshot(trees)
	d.overlay.Apply(ctx, onlineDishes)

	menus := reconcile.Diff(onlineMenus, offline.Menus, menuEqual)
	submenus := reconcile.Diff(onlineSubmenus, offline.Submenus, submenuEqual)
	dishes := reconcile.Diff(onlineDishes, offline.Dishes, dishEqual)

	report := &Report{
		Menus:       menus.Summary(),
		Submenus:    submenus.Summary(),
		Dishes:      dishes.Summary(),
		SkippedRows: offline.Skipped,
	}

	report.Failed = d.apply(ctx, menus, submenus, dishes)
	report.Duration = time.Since(started).Round(time.Millisecond).String()

	if menus.Empty() && submenus.Empty() && dishes.Empty() {
		d.logger.Debug("sync pass found no changes")
	} else {
		d.logger.Info("sync pass applied changes",
			zap.Any("menus", report.Menus),
			zap.Any("submenus", report.Submenus),
			zap.Any("dishes", report.Dishes),
			zap.Int("skipped_rows", report.SkippedRows),
			zap.Int("failed_actions", report.Failed))
	}

	return report, nil
}

// apply executes the change sets: deletions leaf to root, then creations and
// updates root to leaf, so parent rows always exist before their children
// and never disappear under them. Returns the number of failed actions.
func (d *Driver) apply(ctx context.Context, menus reconcile.Changes[MenuRecord], submenus reconcile.Changes[SubmenuRecord], dishes reconcile.Changes[DishRecord]) int {
	failed := 0
	do := func(kind, action, id string, err error) {
		if err != nil {
			failed++
			d.logger.Warn("sync action failed",
				zap.String("kind", kind),
				zap.String("action", action),
				zap.String("id", id),
				zap.Error(err))
		}
	}

	// Children of a deleted parent cascade at the store layer; deleting them
	// individually first would just race the cascade.
	deletedMenus := make(map[string]bool, len(menus.Delete))
	for _, m := range menus.Delete {
		deletedMenus[m.ID] = true
	}
	deletedSubmenus := make(map[string]bool, len(submenus.Delete))
	for _, s := range submenus.Delete {
		deletedSubmenus[s.ID] = true
	}

	for _, rec := range dishes.Delete {
		if deletedMenus[rec.MenuID] || deletedSubmenus[rec.SubmenuID] {
			continue
		}
		do("dish", "delete", rec.ID,
			d.catalog.DeleteDish(ctx, rec.MenuID, rec.SubmenuID, rec.ID))
	}
	for _, rec := range submenus.Delete {
		if deletedMenus[rec.MenuID] {
			continue
		}
		do("submenu", "delete", rec.ID,
			d.catalog.DeleteSubmenu(ctx, rec.MenuID, rec.ID))
	}
	for _, rec := range menus.Delete {
		do("menu", "delete", rec.ID, d.catalog.DeleteMenu(ctx, rec.ID))
	}

	for _, rec := range menus.Update {
		do("menu", "update", rec.ID,
			d.catalog.UpdateMenu(ctx, rec.ID, rec.Title, rec.Description))
	}
	for _, rec := range menus.Create {
		do("menu", "create", rec.ID,
			d.catalog.CreateMenu(ctx, rec.ID, rec.Title, rec.Description))
	}

	for _, rec := range submenus.Update {
		do("submenu", "update", rec.ID,
			d.catalog.UpdateSubmenu(ctx, rec.MenuID, rec.ID, rec.Title, rec.Description))
	}
	for _, rec := range submenus.Create {
		do("submenu", "create", rec.ID,
			d.catalog.CreateSubmenu(ctx, rec.MenuID, rec.ID, rec.Title, rec.Description))
	}

	for _, rec := range dishes.Update {
		err := d.catalog.UpdateDish(ctx, rec.MenuID, rec.SubmenuID, rec.ID, rec.Title, rec.Description, rec.Price)
		do("dish", "update", rec.ID, err)
		if err == nil {
			d.overlay.Refresh(ctx, rec)
		}
	}
	for _, rec := range dishes.Create {
		err := d.catalog.CreateDish(ctx, rec.MenuID, rec.SubmenuID, rec.ID, rec.Title, rec.Description, rec.Price)
		do("dish", "create", rec.ID, err)
		if err == nil {
			d.overlay.Refresh(ctx, rec)
		}
	}

	return failed
}
