package commands

import (
	"fmt"

	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your food journey statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			stats, err := e.workflow.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Foods tried:   %d\n", stats.TotalFoodsTried)
			fmt.Printf("Liked:         %d (%d%%)\n", stats.PositiveFoods, stats.PositivePercentage)
			fmt.Printf("Streak:        %d day(s)\n", stats.Streak)
			for _, achievement := range stats.RecentAchievements {
				fmt.Printf("  * %s\n", achievement)
			}
			return nil
		},
	}
}

// NewExperiencesCmd creates the experiences command.
func NewExperiencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "experiences",
		Short: "List logged food experiences",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			exps, err := e.workflow.Experiences(cmd.Context())
			if err != nil {
				return err
			}
			for _, exp := range exps {
				fmt.Printf("%s  %-40s  %s", exp.CreatedAt.Format("2006-01-02"), exp.FoodName,
					models.RatingLabel(exp.Rating))
				if exp.Notes != "" {
					fmt.Printf("  (%s)", exp.Notes)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

// NewLikedCmd creates the liked command.
func NewLikedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "liked",
		Short: "List food numbers the child rated positively",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			numbers, err := e.workflow.LikedFoodNumbers(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range numbers {
				fmt.Println(n)
			}
			return nil
		},
	}
}

// NewWhoamiCmd creates the whoami command.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the anonymous user id for this installation",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			fmt.Println(e.session.UserID())
			return nil
		},
	}
}
