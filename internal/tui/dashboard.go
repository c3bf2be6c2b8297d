package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/nutrisync/nutrisync/internal/aggregate"
	"github.com/nutrisync/nutrisync/internal/mealplan"
	"github.com/nutrisync/nutrisync/internal/nutrition"
	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/recipe"
	"github.com/nutrisync/nutrisync/internal/recovery"
	"github.com/nutrisync/nutrisync/internal/tui/components/gauge"
	"github.com/nutrisync/nutrisync/internal/tui/theme"
)

type DashboardState struct {
	Loaded bool
	Err    error

	Metrics  *aggregate.Metrics
	Recovery *recovery.Result
	Plan     *plan.Record
}

func (m *Model) DashboardView() string {
	s := m.state.dashboard

	if !s.Loaded {
		return lipgloss.NewStyle().Foreground(theme.ColorDim).Render("loading local data...")
	}
	if s.Err != nil {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorLowRecovery).Render("failed to load local data"),
			lipgloss.NewStyle().Foreground(theme.ColorDim).Render(s.Err.Error()),
		)
	}

	// recovery gauge on the left, plan details on the right
	panelSpacing := "      "
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.recoveryPanel(),
		panelSpacing,
		m.nutritionPanel(),
	)
}

func (m *Model) recoveryPanel() string {
	s := m.state.dashboard

	recoveryGauge := gauge.New(
		readinessPercent(s.Recovery),
		100,
		"RECOVERY",
		m.recoveryColor(),
	)

	parts := []string{recoveryGauge.Render()}

	if s.Recovery == nil {
		parts = append(parts,
			"",
			lipgloss.NewStyle().Foreground(theme.ColorDim).Render("no sleep data - run: nutrisync sync"),
		)
	} else {
		statusStyle := lipgloss.NewStyle().Foreground(m.recoveryColor()).Bold(true)
		ratioStyle := lipgloss.NewStyle().Foreground(theme.ColorDim)
		parts = append(parts,
			"",
			statusStyle.Render(statusLabel(s.Recovery.Status)),
			ratioStyle.Render(fmt.Sprintf("sleep %.2fx baseline   hrv %.2fx baseline",
				s.Recovery.SleepRatio, s.Recovery.HRVRatio)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) nutritionPanel() string {
	s := m.state.dashboard

	titleStyle := lipgloss.NewStyle().Foreground(theme.ColorTeal).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.ColorDim)

	parts := []string{titleStyle.Render("TODAY'S MEALS")}

	if s.Plan == nil {
		parts = append(parts, dimStyle.Render("no plan yet - run: nutrisync plan"))
	} else {
		for _, meal := range todaysMeals(s.Plan) {
			parts = append(parts, mealLine(meal))
		}

		targets := s.Plan.Result.Targets
		parts = append(parts,
			"",
			titleStyle.Render("DAILY TARGETS"),
			dimStyle.Render(fmt.Sprintf("%d kcal", targets.Calories)),
			macroBar("protein", targets.Macros.Protein, theme.ColorProtein),
			macroBar("carbs", targets.Macros.Carbs, theme.ColorCarbs),
			macroBar("fat", targets.Macros.Fat, theme.ColorFat),
		)
	}

	if s.Metrics != nil && !s.Metrics.NoData {
		parts = append(parts,
			"",
			dimStyle.Render(fmt.Sprintf("last %d days: %.0f steps/day, %.1fh sleep/night",
				s.Metrics.DateRange.Days(), s.Metrics.AvgDailySteps, s.Metrics.AvgSleepDuration)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// readinessPercent collapses the two recovery ratios into the gauge
// value: the weaker ratio as a percentage, capped at 100.
func readinessPercent(r *recovery.Result) *float64 {
	if r == nil {
		return nil
	}
	v := min(r.SleepRatio, r.HRVRatio) * 100
	if v > 100 {
		v = 100
	}
	return &v
}

func (m *Model) recoveryColor() color.Color {
	s := m.state.dashboard
	if s.Recovery == nil {
		return theme.ColorRecoveryBlue // neutral color when no data
	}

	switch s.Recovery.Status {
	case recovery.StatusRecovered:
		return theme.ColorHighRecovery
	case recovery.StatusModerateRecovery:
		return theme.ColorMediumRecovery
	default:
		return theme.ColorLowRecovery
	}
}

func statusLabel(s recovery.Status) string {
	switch s {
	case recovery.StatusRecovered:
		return "RECOVERED"
	case recovery.StatusModerateRecovery:
		return "MODERATE RECOVERY"
	case recovery.StatusNeedsRecovery:
		return "NEEDS RECOVERY"
	default:
		return strings.ToUpper(string(s))
	}
}

// todaysMeals picks the plan day for today, counting days since the
// plan was generated and wrapping past the week's end.
func todaysMeals(rec *plan.Record) []mealplan.Meal {
	if len(rec.Result.Week.Days) == 0 {
		return nil
	}
	elapsed := int(time.Now().UTC().Sub(rec.CreatedAt.UTC().Truncate(24*time.Hour)).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}
	idx := elapsed % len(rec.Result.Week.Days)
	return rec.Result.Week.Days[idx].Meals
}

func mealLine(meal mealplan.Meal) string {
	slot := lipgloss.NewStyle().
		Foreground(theme.ColorSleep).
		Render(fmt.Sprintf("%-15s", slotLabel(meal.Slot)))
	kcal := lipgloss.NewStyle().
		Foreground(theme.ColorDim).
		Render(fmt.Sprintf("%4d kcal", meal.Calories))
	return fmt.Sprintf("%s %-28s %s", slot, truncate(meal.Name, 28), kcal)
}

func slotLabel(slot recipe.Slot) string {
	return strings.ReplaceAll(string(slot), "_", " ")
}

// macroBar renders a horizontal bar filled by the macro's share of
// daily calories, labeled with its gram target.
func macroBar(label string, macro nutrition.Macro, c color.Color) string {
	const width = 24

	fill := macro.Percent * width / 100
	if fill < 0 {
		fill = 0
	}
	if fill > width {
		fill = width
	}

	bar := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", fill)) +
		lipgloss.NewStyle().Foreground(theme.ColorBgLight).Render(strings.Repeat("█", width-fill))

	return fmt.Sprintf("%-8s %s %3dg (%d%%)", label, bar, macro.Grams, macro.Percent)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
