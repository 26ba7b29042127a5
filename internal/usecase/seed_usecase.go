package usecase

import (
	"confeccao_os/internal/domain/entities"
	"context"
	"fmt"
	"strings"
)

// CatalogSeed is the reference data loaded by the seed command.
type CatalogSeed struct {
	Stages []entities.ProductionStage
	Items  []entities.CatalogItem
	Colors []entities.Color
}

// SeedReport counts what a seed run created and what already existed.
type SeedReport struct {
	StagesCreated, StagesSkipped int
	ItemsCreated, ItemsSkipped   int
	ColorsCreated, ColorsSkipped int
}

// SeedUseCase loads reference data through the regular use cases, so every
// seeded row passes the same validation as an operator-created one. Rows that
// already exist (same name, or same category and value) are skipped.
type SeedUseCase struct {
	stages  IStageUseCase
	catalog ICatalogUseCase
}

func NewSeedUseCase(stages IStageUseCase, catalog ICatalogUseCase) *SeedUseCase {
	return &SeedUseCase{stages: stages, catalog: catalog}
}

func (u *SeedUseCase) Seed(ctx context.Context, seed CatalogSeed) (SeedReport, error) {
	var report SeedReport

	existingStages, err := u.stages.List(ctx, false)
	if err != nil {
		return report, fmt.Errorf("list stages: %w", err)
	}
	stageNames := make(map[string]bool, len(existingStages))
	for _, s := range existingStages {
		stageNames[seedKey(s.Name)] = true
	}
	for _, s := range seed.Stages {
		if stageNames[seedKey(s.Name)] {
			report.StagesSkipped++
			continue
		}
		if _, err := u.stages.Create(ctx, s); err != nil {
			return report, fmt.Errorf("create stage %q: %w", s.Name, err)
		}
		stageNames[seedKey(s.Name)] = true
		report.StagesCreated++
	}

	itemValues := map[entities.CatalogCategory]map[string]bool{}
	for _, it := range seed.Items {
		values, ok := itemValues[it.Category]
		if !ok {
			existing, err := u.catalog.ListItems(ctx, it.Category)
			if err != nil {
				return report, fmt.Errorf("list catalog %q: %w", it.Category, err)
			}
			values = make(map[string]bool, len(existing))
			for _, e := range existing {
				values[seedKey(e.Value)] = true
			}
			itemValues[it.Category] = values
		}
		if values[seedKey(it.Value)] {
			report.ItemsSkipped++
			continue
		}
		if _, err := u.catalog.CreateItem(ctx, it); err != nil {
			return report, fmt.Errorf("create catalog item %q/%q: %w", it.Category, it.Value, err)
		}
		values[seedKey(it.Value)] = true
		report.ItemsCreated++
	}

	existingColors, err := u.catalog.ListColors(ctx)
	if err != nil {
		return report, fmt.Errorf("list colors: %w", err)
	}
	colorNames := make(map[string]bool, len(existingColors))
	for _, c := range existingColors {
		colorNames[seedKey(c.Name)] = true
	}
	for _, c := range seed.Colors {
		if colorNames[seedKey(c.Name)] {
			report.ColorsSkipped++
			continue
		}
		if _, err := u.catalog.CreateColor(ctx, c); err != nil {
			return report, fmt.Errorf("create color %q: %w", c.Name, err)
		}
		colorNames[seedKey(c.Name)] = true
		report.ColorsCreated++
	}
	return report, nil
}

func seedKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
