package commands

import (
	"fmt"

	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/spf13/cobra"
)

// NewLogCmd creates the log command: a detailed food experience with an
// explicit rating and free-text notes.
func NewLogCmd() *cobra.Command {
	var (
		foodNumber int
		foodName   string
		rating     int
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a food experience",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			exp, err := e.workflow.SubmitDetailedLog(cmd.Context(), foodNumber, foodName, rating, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s: %s\n", exp.FoodName, models.RatingLabel(exp.Rating))
			return nil
		},
	}

	cmd.Flags().IntVar(&foodNumber, "food", 0, "Food number")
	cmd.Flags().StringVar(&foodName, "name", "", "Food name")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}
