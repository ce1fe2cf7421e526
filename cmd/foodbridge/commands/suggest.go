package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/foodbridge/foodbridge/internal/models"
	"github.com/foodbridge/foodbridge/internal/selection"
	"github.com/foodbridge/foodbridge/internal/suggest"
	"github.com/spf13/cobra"
)

// NewSuggestCmd creates the suggest command: personalized suggestions for
// the given foods, or popular ones when none are given.
func NewSuggestCmd() *cobra.Command {
	var (
		foods []int
		max   int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get food suggestions",
		Long:  "Get suggestions based on foods the child enjoys, or popular suggestions when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			// Repeating a food number toggles it back out, matching the
			// selection grid.
			sel := selection.NewSession()
			for _, n := range foods {
				sel.Toggle(n)
			}
			inputs := make([]suggest.SelectionInput, 0, sel.Len())
			for _, n := range sel.Numbers() {
				inputs = append(inputs, suggest.ByNumber(n))
			}

			suggestions, err := e.workflow.RequestSuggestions(cmd.Context(), inputs, max)
			if err != nil {
				return fmt.Errorf("failed to load suggestions: %w", err)
			}

			for _, sg := range suggestions {
				fmt.Printf("%6d  %s\n", sg.FoodNumber, sg.FoodName)
				fmt.Printf("        %s\n", sg.Reason)
				fmt.Printf("        Confidence: %d%%  Tags: %s\n",
					int(math.Round(sg.ConfidenceScore*100)), strings.Join(sg.Tags, ", "))
				fmt.Printf("        %s\n", e.resolver.Resolve(sg.FoodName, sg.ImageURL))
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&foods, "foods", nil, "Food numbers the child already enjoys")
	cmd.Flags().IntVar(&max, "max", 0, "Maximum number of suggestions (0 uses the default cap)")

	return cmd
}

// NewReactCmd creates the react command: a quick reaction to a suggested
// food, logged with the suggestion context.
func NewReactCmd() *cobra.Command {
	var (
		foodNumber int
		foodName   string
		outcome    string
	)

	cmd := &cobra.Command{
		Use:   "react",
		Short: "React to a suggested food",
		Long:  "Record whether the child loved, tolerated, or rejected a suggested food",
		RunE: func(cmd *cobra.Command, args []string) error {
			var oc suggest.Outcome
			switch outcome {
			case "loved", "neutral", "rejected":
				oc = suggest.Outcome(outcome)
			default:
				return fmt.Errorf("outcome must be one of loved, neutral, rejected")
			}

			e, err := newEnv()
			if err != nil {
				return err
			}
			defer e.close()

			sg := models.Suggestion{FoodNumber: foodNumber, FoodName: foodName}
			draft := e.workflow.React(cmd.Context(), &sg, oc)
			fmt.Printf("Add details with: foodbridge log --food %d --name %q --rating %d --notes \"...\"\n",
				draft.FoodNumber, draft.FoodName, draft.Rating)
			return nil
		},
	}

	cmd.Flags().IntVar(&foodNumber, "food", 0, "Food number of the suggestion")
	cmd.Flags().StringVar(&foodName, "name", "", "Food name of the suggestion")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Reaction: loved, neutral, or rejected")
	_ = cmd.MarkFlagRequired("food")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("outcome")

	return cmd
}
