package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveID matches user input against a set of ids: exact match first,
// then unique prefix. Ambiguous prefixes are an error, not a guess.
func resolveID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveStageID accepts a stage id, an id prefix, or a case-insensitive
// stage name.
func resolveStageID(ctx context.Context, app *App, input string) (string, error) {
	stages, err := app.Stages.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range stages {
		if strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
	}

	ids := make([]string, 0, len(stages))
	for _, s := range stages {
		ids = append(ids, s.ID)
	}
	return resolveID("stage", input, ids)
}

func resolveContactID(ctx context.Context, app *App, input string) (string, error) {
	contacts, err := app.Contacts.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.ID)
	}
	return resolveID("contact", input, ids)
}

func resolveDealID(ctx context.Context, app *App, input string) (string, error) {
	deals, err := app.Deals.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(deals))
	for _, d := range deals {
		ids = append(ids, d.ID)
	}
	return resolveID("deal", input, ids)
}

func resolveActivityID(ctx context.Context, app *App, dealID, input string) (string, error) {
	activities, err := app.Activities.ListByDeal(ctx, dealID)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return resolveID("activity", input, ids)
}
