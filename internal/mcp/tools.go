// ABOUTME: MCP tool implementations for profiles, plans, water, and cycles.
// ABOUTME: Plan tools recompute from the stored profile on every call.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/beastmode/internal/fitness"
	"github.com/harperreed/beastmode/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Save the user profile (anthropometrics, goal, training level)",
	}, s.handleSetProfile)

	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the stored profile with derived BMI, calorie, and macro targets",
	}, s.handleGetProfile)

	// generate_training_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_training_plan",
		Description: "Generate the weekly training split for the stored profile",
	}, s.handleTrainingPlan)

	// generate_meal_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_meal_plan",
		Description: "Generate the daily meal plan with calorie and macro targets",
	}, s.handleMealPlan)

	// generate_supplement_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_supplement_plan",
		Description: "Generate the supplement recommendations for the stored profile",
	}, s.handleSupplementPlan)

	// water_schedule
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "water_schedule",
		Description: "Get the daily water target and reminder schedule",
	}, s.handleWaterSchedule)

	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Log water intake in milliliters for today",
	}, s.handleLogWater)

	// add_cycle
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_cycle",
		Description: "Track a new cycle (compound, dosage, frequency, duration)",
	}, s.handleAddCycle)

	// list_cycles
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_cycles",
		Description: "List tracked cycles with days remaining and percent complete",
	}, s.handleListCycles)

	// delete_cycle
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_cycle",
		Description: "Delete a cycle by ID or ID prefix",
	}, s.handleDeleteCycle)
}

// Tool input/output types

type setProfileInput struct {
	Name         string  `json:"name" jsonschema:"User name"`
	Age          int     `json:"age" jsonschema:"Age in years"`
	WeightKg     float64 `json:"weight_kg" jsonschema:"Body weight in kilograms"`
	HeightCm     float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	Gender       string  `json:"gender" jsonschema:"Gender (male or female)"`
	Goal         string  `json:"goal" jsonschema:"Goal (lose-weight, gain-muscle, cut, general-health)"`
	Level        string  `json:"level" jsonschema:"Training level (beginner, intermediate, advanced)"`
	TrainingDays int     `json:"training_days,omitempty" jsonschema:"Training days per week (default 4)"`
	VIP          bool    `json:"vip,omitempty" jsonschema:"Unlock VIP content"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logWaterInput struct {
	AmountML int `json:"amount_ml" jsonschema:"Water amount in milliliters"`
}

type waterOutput struct {
	ConsumedML int    `json:"consumed_ml"`
	TargetML   int    `json:"target_ml"`
	Message    string `json:"message"`
}

type addCycleInput struct {
	Compound      string `json:"compound" jsonschema:"Compound name"`
	Dosage        string `json:"dosage" jsonschema:"Dosage (e.g. 250mg)"`
	Frequency     string `json:"frequency" jsonschema:"Application frequency (e.g. 2x per week)"`
	StartDate     string `json:"start_date" jsonschema:"Start date (YYYY-MM-DD)"`
	DurationWeeks int    `json:"duration_weeks" jsonschema:"Cycle length in weeks"`
	Notes         string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type cycleOutput struct {
	ID       string `json:"id"`
	Compound string `json:"compound"`
	Message  string `json:"message"`
}

type deleteCycleInput struct {
	ID string `json:"id" jsonschema:"Cycle ID or prefix"`
}

type emptyInput struct{}

// profile loads the stored profile, mapping the not-found case to a
// hint about set_profile.
func (s *Server) profile() (*models.Profile, error) {
	p, err := s.repo.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("no profile saved yet: use set_profile first")
	}
	return p, nil
}

// Tool handlers

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	gender, err := models.ParseGender(input.Gender)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	goal, err := models.ParseGoal(input.Goal)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	level, err := models.ParseLevel(input.Level)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	days := input.TrainingDays
	if days == 0 {
		days = 4
	}

	p := &models.Profile{
		Name:         input.Name,
		Age:          input.Age,
		WeightKg:     input.WeightKg,
		HeightCm:     input.HeightCm,
		Gender:       gender,
		Goal:         goal,
		Level:        level,
		TrainingDays: days,
		VIP:          input.VIP,
	}
	if err := s.repo.SaveProfile(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved profile for %s (%s, %s)", p.Name, p.Goal, p.Level),
	}, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profile()
	if err != nil {
		return nil, nil, err
	}

	calories := fitness.DailyCalories(p)
	macros := fitness.Macros(calories, p.Goal)
	bmi := p.BMI()

	return nil, map[string]any{
		"profile":        p,
		"bmi":            bmi,
		"bmi_category":   models.BMICategory(bmi),
		"daily_calories": calories,
		"macros":         macros,
		"daily_water_ml": fitness.DailyWaterML(p.WeightKg, p.Goal),
	}, nil
}

func (s *Server) handleTrainingPlan(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profile()
	if err != nil {
		return nil, nil, err
	}
	return nil, fitness.BuildTrainingPlan(p), nil
}

func (s *Server) handleMealPlan(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profile()
	if err != nil {
		return nil, nil, err
	}
	return nil, fitness.BuildMealPlan(p), nil
}

func (s *Server) handleSupplementPlan(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profile()
	if err != nil {
		return nil, nil, err
	}
	return nil, fitness.BuildSupplementPlan(p), nil
}

func (s *Server) handleWaterSchedule(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.profile()
	if err != nil {
		return nil, nil, err
	}

	target := fitness.DailyWaterML(p.WeightKg, p.Goal)
	return nil, map[string]any{
		"target_ml": target,
		"schedule":  fitness.WaterSchedule(target),
	}, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, waterOutput, error) {
	p, err := s.profile()
	if err != nil {
		return nil, waterOutput{}, err
	}

	today := time.Now()
	if err := s.repo.LogWater(today, input.AmountML); err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to log water: %w", err)
	}

	consumed, err := s.repo.WaterConsumed(today)
	if err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to read water total: %w", err)
	}
	target := fitness.DailyWaterML(p.WeightKg, p.Goal)

	return nil, waterOutput{
		ConsumedML: consumed,
		TargetML:   target,
		Message:    fmt.Sprintf("Logged %d ml (%d/%d ml today)", input.AmountML, consumed, target),
	}, nil
}

func (s *Server) handleAddCycle(ctx context.Context, req *mcp.CallToolRequest, input addCycleInput) (*mcp.CallToolResult, cycleOutput, error) {
	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, cycleOutput{}, fmt.Errorf("invalid start date %q: use YYYY-MM-DD", input.StartDate)
	}

	c := models.NewCycle(input.Compound, input.Dosage, input.Frequency, start, input.DurationWeeks)
	if input.Notes != "" {
		c.WithNotes(input.Notes)
	}

	if err := s.repo.CreateCycle(c); err != nil {
		return nil, cycleOutput{}, fmt.Errorf("failed to create cycle: %w", err)
	}

	return nil, cycleOutput{
		ID:       c.ID.String()[:8],
		Compound: c.Compound,
		Message:  fmt.Sprintf("Tracking %s for %d weeks (ID: %s)", c.Compound, c.DurationWeeks, c.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListCycles(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	cycles, err := s.repo.ListCycles()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list cycles: %w", err)
	}

	if len(cycles) == 0 {
		return nil, map[string]any{"message": "No cycles tracked."}, nil
	}

	now := time.Now()
	out := make([]map[string]any, 0, len(cycles))
	for _, c := range cycles {
		progress := c.Progress(now)
		entry := map[string]any{
			"id":               c.ID.String()[:8],
			"compound":         c.Compound,
			"dosage":           c.Dosage,
			"frequency":        c.Frequency,
			"start_date":       c.StartDate.Format("2006-01-02"),
			"duration_weeks":   c.DurationWeeks,
			"days_remaining":   progress.DaysRemaining,
			"percent_complete": progress.PercentComplete,
			"finished":         c.Finished(now),
		}
		if c.Notes != nil {
			entry["notes"] = *c.Notes
		}
		out = append(out, entry)
	}

	return nil, out, nil
}

func (s *Server) handleDeleteCycle(ctx context.Context, req *mcp.CallToolRequest, input deleteCycleInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteCycle(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete cycle: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted cycle: %s", input.ID),
	}, nil
}
