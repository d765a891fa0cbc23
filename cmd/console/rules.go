package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

type ruleAction int

const (
	ruleAdd ruleAction = iota
	ruleToggle
	ruleDelete
	ruleInstallRecommended
	ruleBack
)

func (c console) rulesView(ctx context.Context) error {
	for {
		var rules []client.AutoFlagRule
		err := runWithSpinner("Loading rules", func() error {
			var loadErr error
			rules, loadErr = c.api.Rules(ctx)
			return loadErr
		})
		if err != nil {
			return err
		}

		for _, r := range rules {
			state := successStyle.Render("active")
			if !r.Active {
				state = warnStyle.Render("off")
			}
			fmt.Printf("%s %s %s %s\n",
				pad(r.Name, 36), pad(r.Action, 14), state, describeConditions(r.Conditions))
		}

		action := ruleBack
		if err := huh.NewSelect[ruleAction]().
			Title(fmt.Sprintf("Auto-flag rules (%d)", len(rules))).
			Options(
				huh.NewOption("Add rule", ruleAdd),
				huh.NewOption("Toggle rule", ruleToggle),
				huh.NewOption("Delete rule", ruleDelete),
				huh.NewOption("Install recommended rules", ruleInstallRecommended),
				huh.NewOption("Back", ruleBack),
			).
			Value(&action).
			Run(); err != nil {
			return err
		}

		switch action {
		case ruleAdd:
			if err := c.addRule(ctx); err != nil {
				return err
			}
		case ruleToggle:
			if err := c.toggleRule(ctx, rules); err != nil {
				return err
			}
		case ruleDelete:
			if err := c.deleteRule(ctx, rules); err != nil {
				return err
			}
		case ruleInstallRecommended:
			if err := c.installRecommended(ctx); err != nil {
				return err
			}
		case ruleBack:
			return nil
		}
	}
}

func describeConditions(cond client.RuleConditions) string {
	out := ""
	if cond.TitleContains != "" {
		out += fmt.Sprintf("title~%q ", cond.TitleContains)
	}
	if cond.ChannelNameContains != "" {
		out += fmt.Sprintf("channel~%q ", cond.ChannelNameContains)
	}
	if cond.KeywordExactMatch != "" {
		out += fmt.Sprintf("keyword=%q", cond.KeywordExactMatch)
	}
	return out
}

func (c console) addRule(ctx context.Context) error {
	var req client.RuleRequest
	req.Action = "flag"
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Rule name").
				Value(&req.Name).
				Validate(required("Rule name")),
			huh.NewInput().
				Title("Description (optional)").
				Value(&req.Description),
			huh.NewInput().
				Title("Title contains (optional)").
				Value(&req.Conditions.TitleContains),
			huh.NewInput().
				Title("Channel name contains (optional)").
				Value(&req.Conditions.ChannelNameContains),
			huh.NewInput().
				Title("Keyword exact match (optional)").
				Value(&req.Conditions.KeywordExactMatch),
			huh.NewSelect[string]().
				Title("Action").
				Options(
					huh.NewOption("Flag for takedown", "flag"),
					huh.NewOption("Raise to high priority", "high_priority"),
					huh.NewOption("Critical priority + flag", "critical"),
				).
				Value(&req.Action),
		),
	).Run()
	if err != nil {
		return err
	}

	switch err := c.api.CreateRule(ctx, req); err {
	case nil:
		success("Added rule %q", req.Name)
		return nil
	case client.ErrNoConditions:
		notice("At least one condition is required, rule not created")
		return nil
	default:
		return err
	}
}

func (c console) toggleRule(ctx context.Context, rules []client.AutoFlagRule) error {
	if len(rules) == 0 {
		notice("No rules yet")
		return nil
	}
	options := make([]huh.Option[int], 0, len(rules))
	for i, r := range rules {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%s (%s)", r.Name, onOff(r.Active)), i))
	}
	var idx int
	if err := huh.NewSelect[int]().
		Title("Toggle which rule?").
		Options(options...).
		Value(&idx).
		Run(); err != nil {
		return err
	}
	rule := rules[idx]
	if err := c.api.SetRuleActive(ctx, rule.ID, !rule.Active); err != nil {
		return err
	}
	success("Rule %q is now %s", rule.Name, onOff(!rule.Active))
	return nil
}

func (c console) deleteRule(ctx context.Context, rules []client.AutoFlagRule) error {
	if len(rules) == 0 {
		notice("No rules yet")
		return nil
	}
	options := make([]huh.Option[int64], 0, len(rules))
	for _, r := range rules {
		options = append(options, huh.NewOption(r.Name, r.ID))
	}
	var id int64
	if err := huh.NewSelect[int64]().
		Title("Delete which rule?").
		Options(options...).
		Value(&id).
		Run(); err != nil {
		return err
	}
	if err := c.api.DeleteRule(ctx, id); err != nil {
		return err
	}
	success("Rule deleted")
	return nil
}

func (c console) installRecommended(ctx context.Context) error {
	var recommended []client.RuleRequest
	err := runWithSpinner("Fetching recommended rules", func() error {
		var fetchErr error
		recommended, fetchErr = c.api.RecommendedRules(ctx)
		return fetchErr
	})
	if err != nil {
		return err
	}

	for _, r := range recommended {
		fmt.Printf("  %s %s %s\n", pad(r.Name, 36), pad(r.Action, 14), describeConditions(r.Conditions))
	}

	ok, err := huhConfirmer().Confirm(ctx, fmt.Sprintf("Install %d recommended rules?", len(recommended)))
	if err != nil {
		return err
	}
	if !ok {
		notice("Install cancelled")
		return nil
	}

	added, err := c.api.InstallRecommendedRules(ctx)
	if err != nil {
		return err
	}
	success("Installed %d rules (existing names skipped)", added)
	return nil
}
