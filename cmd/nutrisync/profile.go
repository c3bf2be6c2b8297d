package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/profile"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local health profile",
	}
	cmd.AddCommand(profileSetCmd())
	cmd.AddCommand(profileShowCmd())
	return cmd
}

func profileSetCmd() *cobra.Command {
	var (
		name         string
		age          int
		weight       float64
		height       float64
		gender       string
		activity     string
		goal         string
		weeklyTarget float64
		meals        int
		diet         string
		exclude      []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the profile",
		Long:  "Creates the local profile on first run; later runs only change the flags you pass.",
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
				p = &profile.Profile{UserID: localUserID}
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = name
			}
			if flags.Changed("age") {
				p.Age = age
			}
			if flags.Changed("weight") {
				p.WeightKg = weight
			}
			if flags.Changed("height") {
				p.HeightCm = height
			}
			if flags.Changed("gender") {
				p.Gender = nutrition.Gender(gender)
			}
			if flags.Changed("activity") {
				p.ActivityLevel = nutrition.ActivityLevel(activity)
			}
			if flags.Changed("goal") {
				p.Goal = nutrition.Goal(goal)
			}
			if flags.Changed("weekly-target") {
				p.WeeklyActivityTarget = weeklyTarget
			}
			if flags.Changed("meals") {
				p.MealsPerDay = meals
			}
			if flags.Changed("diet") {
				p.DietaryType = diet
			}
			if flags.Changed("exclude") {
				p.ExcludedFoods = exclude
			}

			// The store validates before writing.
			if err := st.Profiles.Upsert(ctx, p); err != nil {
				return describeValidation(err)
			}

			fmt.Println("profile saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().IntVar(&age, "age", 0, "age in years")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().Float64Var(&height, "height", 0, "height in cm")
	cmd.Flags().StringVar(&gender, "gender", "", "male or other")
	cmd.Flags().StringVar(&activity, "activity", "", "sedentary, light, moderate, high, or athlete")
	cmd.Flags().StringVar(&goal, "goal", "", "weight_loss, muscle_gain, maintenance, or endurance")
	cmd.Flags().Float64Var(&weeklyTarget, "weekly-target", 0, "weekly activity target in hours")
	cmd.Flags().IntVar(&meals, "meals", 0, "preferred meals per day (3-6)")
	cmd.Flags().StringVar(&diet, "diet", "", "dietary type (e.g. balanced, vegetarian, high_protein)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "foods to exclude")

	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the profile",
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

			fmt.Println(headerStyle.Render(p.Name))
			fmt.Printf("  age            %d\n", p.Age)
			fmt.Printf("  weight         %.1f kg\n", p.WeightKg)
			fmt.Printf("  height         %.1f cm\n", p.HeightCm)
			fmt.Printf("  gender         %s\n", p.Gender)
			fmt.Printf("  activity       %s\n", p.ActivityLevel)
			fmt.Printf("  goal           %s\n", p.Goal)
			fmt.Printf("  weekly target  %.1f h\n", p.WeeklyActivityTarget)
			if p.MealsPerDay != 0 {
				fmt.Printf("  meals/day      %d\n", p.MealsPerDay)
			}
			if p.DietaryType != "" {
				fmt.Printf("  diet           %s\n", p.DietaryType)
			}
			if len(p.ExcludedFoods) > 0 {
				fmt.Printf("  excluded       %s\n", strings.Join(p.ExcludedFoods, ", "))
			}
			return nil
		},
	}
}
