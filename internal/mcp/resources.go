// ABOUTME: MCP resource implementations for beastmode data.
// ABOUTME: Provides beastmode://profile, beastmode://plan, and beastmode://education.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/beastmode/internal/fitness"
	"github.com/harperreed/beastmode/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// beastmode://profile - Stored profile with derived targets
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "beastmode://profile",
		Name:        "User Profile",
		Description: "Stored profile with BMI, calorie, macro, and water targets",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	// beastmode://plan - Full generated plan
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "beastmode://plan",
		Name:        "Full Plan",
		Description: "Training split, meal plan, supplements, and water schedule",
		MIMEType:    "application/json",
	}, s.handlePlanResource)

	// beastmode://education - Harm-reduction guide (VIP only)
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "beastmode://education",
		Name:        "Anabolic Education",
		Description: "Harm-reduction education on anabolic cycles (VIP profiles only)",
		MIMEType:    "application/json",
	}, s.handleEducationResource)
}

// Resource handlers

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}

	calories := fitness.DailyCalories(p)
	bmi := p.BMI()

	result := map[string]any{
		"profile":        p,
		"bmi":            bmi,
		"bmi_category":   models.BMICategory(bmi),
		"daily_calories": calories,
		"macros":         fitness.Macros(calories, p.Goal),
		"daily_water_ml": fitness.DailyWaterML(p.WeightKg, p.Goal),
	}

	return resourceResult("beastmode://profile", result)
}

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}

	target := fitness.DailyWaterML(p.WeightKg, p.Goal)
	result := map[string]any{
		"generated_at": time.Now().Format(time.RFC3339),
		"training":     fitness.BuildTrainingPlan(p),
		"meals":        fitness.BuildMealPlan(p),
		"supplements":  fitness.BuildSupplementPlan(p),
		"water": map[string]any{
			"target_ml": target,
			"schedule":  fitness.WaterSchedule(target),
		},
	}

	return resourceResult("beastmode://plan", result)
}

func (s *Server) handleEducationResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.profile()
	if err != nil {
		return nil, err
	}
	if !p.VIP {
		return nil, fmt.Errorf("education content is VIP-only: run set_profile with vip=true")
	}

	return resourceResult("beastmode://education", fitness.AnabolicEducation())
}
