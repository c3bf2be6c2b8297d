package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/grocery"
	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/recipe"
)

func planCmd() *cobra.Command {
	var (
		meals    int
		diet     string
		exclude  []string
		servings int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a weekly meal plan",
		Long:  "Generates a week of meals from your profile and synced metrics, saves it locally, and prints the plan with its grocery list.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return fmt.Errorf("failed to open local store: %w", err)
			}
			defer func() { _ = st.Close() }()

			p, err := st.Profiles.Get(ctx, localUserID)
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			if p == nil {
				return fmt.Errorf("no profile configured, run: nutrisync profile set")
			}

			// A missing metrics window is fine; generation falls back
			// to the activity multiplier.
			var metrics aggregate.Metrics
			if m, err := st.Metrics.Latest(ctx, localUserID); err != nil {
				return fmt.Errorf("failed to load metrics: %w", err)
			} else if m != nil {
				metrics = *m
			}

			prefs := mealplan.Preferences{
				DietaryType:   diet,
				ExcludedFoods: exclude,
				MealCount:     meals,
				Servings:      servings,
			}

			service := plan.NewService(recipe.Seed(), st.Plans, quietLogger())
			res, err := service.Generate(*p, metrics, prefs)
			if err != nil {
				return describeValidation(err)
			}

			rec, err := service.Save(ctx, localUserID, res)
			if err != nil {
				return fmt.Errorf("failed to save plan: %w", err)
			}

			printPlan(rec)
			return nil
		},
	}

	cmd.Flags().IntVar(&meals, "meals", 0, "meals per day (3-6, default from profile)")
	cmd.Flags().StringVar(&diet, "diet", "", "dietary type (e.g. balanced, vegetarian, high_protein)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "foods to exclude (default from profile)")
	cmd.Flags().IntVar(&servings, "servings", 0, "servings per meal")

	return cmd
}

func printPlan(rec *plan.Record) {
	res := rec.Result

	fmt.Println(headerStyle.Render("DAILY TARGETS"))
	fmt.Printf("  %d kcal  protein %dg  carbs %dg  fat %dg\n",
		res.Targets.Calories,
		res.Targets.Macros.Protein.Grams,
		res.Targets.Macros.Carbs.Grams,
		res.Targets.Macros.Fat.Grams,
	)
	fmt.Printf("  hydration %.1f L/day\n", float64(res.HydrationML)/1000)
	fmt.Printf("  %s\n", dimStyle.Render(fmt.Sprintf("%d meals/day suggested, %s",
		res.Timing.MealsPerDay, strings.ToLower(res.Timing.Spacing))))
	fmt.Println()

	for i, day := range res.Week.Days {
		fmt.Println(labelStyle.Render(fmt.Sprintf("DAY %d", i+1)))
		for _, meal := range day.Meals {
			fmt.Printf("  %-15s %-34s %4d kcal\n",
				strings.ReplaceAll(string(meal.Slot), "_", " "),
				truncate(meal.Name, 34),
				meal.Calories,
			)
		}
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("GROCERY LIST"))
	for _, cat := range res.Groceries.Categories {
		fmt.Println(labelStyle.Render("  " + cat.Name))
		for _, item := range cat.Items {
			fmt.Printf("    %-28s %g %s\n", item.Name, item.Quantity, item.Unit)
		}
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("PREP SCHEDULE"))
	printPrepDay("Sunday", res.Prep.Sunday)
	printPrepDay("Wednesday", res.Prep.Wednesday)

	fmt.Println()
	fmt.Println(dimStyle.Render("saved as plan " + rec.ID))
}

func printPrepDay(day string, tasks []grocery.PrepTask) {
	if len(tasks) == 0 {
		return
	}
	fmt.Println(labelStyle.Render("  " + day))
	for _, t := range tasks {
		fmt.Printf("    %s (%s)\n", t.Task, t.EstimatedTime)
	}
}
