package main

import (
	"fmt"
	"os"

	"github.com/foodbridge/foodbridge/cmd/foodbridge/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "foodbridge",
		Short: "FoodBridge client",
		Long:  "Discover foods a child enjoys, get substitute suggestions, and log outcomes",
	}

	rootCmd.AddCommand(commands.NewBrowseCmd())
	rootCmd.AddCommand(commands.NewQuickStartCmd())
	rootCmd.AddCommand(commands.NewCategoriesCmd())
	rootCmd.AddCommand(commands.NewCountCmd())
	rootCmd.AddCommand(commands.NewSuggestCmd())
	rootCmd.AddCommand(commands.NewReactCmd())
	rootCmd.AddCommand(commands.NewLogCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewExperiencesCmd())
	rootCmd.AddCommand(commands.NewLikedCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
