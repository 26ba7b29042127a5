package main

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout of a reference data file. Catalog values are
// grouped by category.
type seedFile struct {
	Stages []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Order       int    `yaml:"order"`
		Active      *bool  `yaml:"active"`
	} `yaml:"stages"`
	Catalog map[string][]struct {
		Value       string `yaml:"value"`
		Description string `yaml:"description"`
	} `yaml:"catalog"`
	Colors []struct {
		Name   string `yaml:"name"`
		Hex    string `yaml:"hex"`
		Active *bool  `yaml:"active"`
	} `yaml:"colors"`
}

type seeder interface {
	Seed(ctx context.Context, seed usecase.CatalogSeed) (usecase.SeedReport, error)
}

func newSeedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load production stages, catalog values and colors",
		Long:  "Creates the stages, catalog values and colors listed in a YAML file. Entries that already exist are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := loadSeedFile(path)
			if err != nil {
				return err
			}
			container, err := buildContainer(cmd.Context())
			if err != nil {
				return err
			}
			return runSeed(cmd, container.Seed, seed)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "configs/seed.yaml", "path to the seed file")
	return cmd
}

func runSeed(cmd *cobra.Command, s seeder, seed usecase.CatalogSeed) error {
	report, err := s.Seed(cmd.Context(), seed)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "stages: %d created, %d skipped\n", report.StagesCreated, report.StagesSkipped)
	fmt.Fprintf(out, "catalog: %d created, %d skipped\n", report.ItemsCreated, report.ItemsSkipped)
	fmt.Fprintf(out, "colors: %d created, %d skipped\n", report.ColorsCreated, report.ColorsSkipped)
	return nil
}

func loadSeedFile(path string) (usecase.CatalogSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return usecase.CatalogSeed{}, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(raw)
}

func parseSeed(raw []byte) (usecase.CatalogSeed, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return usecase.CatalogSeed{}, fmt.Errorf("parse seed file: %w", err)
	}

	var seed usecase.CatalogSeed
	for _, s := range f.Stages {
		seed.Stages = append(seed.Stages, entities.ProductionStage{
			Name:        s.Name,
			Description: s.Description,
			Order:       s.Order,
			Active:      s.Active == nil || *s.Active,
		})
	}

	categories := make([]string, 0, len(f.Catalog))
	for c := range f.Catalog {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		category := entities.CatalogCategory(c)
		if !category.Valid() {
			return usecase.CatalogSeed{}, fmt.Errorf("parse seed file: unknown catalog category %q", c)
		}
		for _, it := range f.Catalog[c] {
			seed.Items = append(seed.Items, entities.CatalogItem{
				Category:    category,
				Value:       it.Value,
				Description: it.Description,
			})
		}
	}

	for _, c := range f.Colors {
		seed.Colors = append(seed.Colors, entities.Color{
			Name:   c.Name,
			Hex:    c.Hex,
			Active: c.Active == nil || *c.Active,
		})
	}
	return seed, nil
}
