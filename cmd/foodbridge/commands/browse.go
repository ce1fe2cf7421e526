package commands

import (
	"fmt"
	"strings"

	"github.com/foodbridge/foodbridge/internal/catalog"
	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/spf13/cobra"
)

// NewBrowseCmd creates the browse command: one page of the narrowed
// catalog.
func NewBrowseCmd() *cobra.Command {
	var (
		search   string
		language string
		category string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the food catalog",
		Long:  "Search, filter, and page through the food catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			engine := catalog.NewEngine(e.ds, e.cfg.PageSize, e.logger)
			engine.SetLanguage(models.Language(language))
			engine.SetCategory(category)
			engine.SetSearchTerm(search)
			engine.GoToPage(page)

			result, err := engine.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load foods (retry with the same filters): %w", err)
			}
			// GoToPage before the first refresh clamps against an empty
			// catalog, so re-apply the requested page now.
			if page > 1 {
				engine.GoToPage(page)
				if result, err = engine.Current(); err != nil {
					return err
				}
			}

			if len(result.Items) == 0 {
				if engine.SearchActive() {
					fmt.Printf("No foods found matching %q\n", search)
				} else {
					fmt.Println("No foods to show")
				}
				return nil
			}

			for _, food := range result.Items {
				fmt.Printf("%6d  %-40s  %s\n", food.FoodNumber, food.DisplayName(),
					strings.Join(food.Tags(), ", "))
				fmt.Printf("        %s\n", e.resolver.Resolve(food.Name, food.ImageURL))
			}
			fmt.Printf("Page %d of %d (%d foods)\n", result.Number, result.TotalPages, result.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term (terms longer than 2 characters bypass the category filter)")
	cmd.Flags().StringVar(&language, "language", "en", "Language filter: en, sv, or all")
	cmd.Flags().StringVar(&category, "category", "all", "Category filter, or 'all'")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")

	return cmd
}

// NewQuickStartCmd creates the quickstart command: the home screen's
// child-friendly selection grid.
func NewQuickStartCmd() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "quickstart",
		Short: "Show popular child-friendly foods",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			engine := catalog.NewEngine(e.ds, e.cfg.PageSize, e.logger)
			foods, err := engine.QuickStart(cmd.Context(), max)
			if err != nil {
				return fmt.Errorf("failed to load foods: %w", err)
			}
			for _, food := range foods {
				fmt.Printf("%6d  %-40s  %s\n", food.FoodNumber, food.Name, food.FoodCategory)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 6, "Maximum number of foods")
	return cmd
}

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List food categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			categories, err := e.ds.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			for _, category := range categories {
				fmt.Println(category)
			}
			return nil
		},
	}
}

// NewCountCmd creates the count command.
func NewCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show the total number of foods",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			count, err := e.ds.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		},
	}
}
