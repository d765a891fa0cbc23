package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

type keywordAction int

const (
	keywordAdd keywordAction = iota
	keywordBulkImport
	keywordTemplate
	keywordDelete
	keywordClear
	keywordBack
)

func (c console) keywordsView(ctx context.Context) error {
	for {
		var keywords []client.Keyword
		err := runWithSpinner("Loading keywords", func() error {
			var loadErr error
			keywords, loadErr = c.api.Keywords(ctx)
			return loadErr
		})
		if err != nil {
			return err
		}

		for _, k := range keywords {
			flag := " "
			if k.AutoFlag {
				flag = warnStyle.Render("⚑")
			}
			fmt.Printf("%s %s %s active:%s\n",
				flag, pad(k.Keyword, 48), pad(k.Priority, 10), onOff(k.Active))
		}

		action := keywordBack
		if err := huh.NewSelect[keywordAction]().
			Title(fmt.Sprintf("Keywords (%d)", len(keywords))).
			Options(
				huh.NewOption("Add keyword", keywordAdd),
				huh.NewOption("Bulk import from CSV/XLSX", keywordBulkImport),
				huh.NewOption("Save CSV template", keywordTemplate),
				huh.NewOption("Delete keyword", keywordDelete),
				huh.NewOption("Clear all keywords", keywordClear),
				huh.NewOption("Back", keywordBack),
			).
			Value(&action).
			Run(); err != nil {
			return err
		}

		switch action {
		case keywordAdd:
			if err := c.addKeyword(ctx); err != nil {
				return err
			}
		case keywordBulkImport:
			if err := c.bulkImportKeywords(ctx); err != nil {
				return err
			}
		case keywordTemplate:
			if err := saveDownload(client.KeywordTemplateCSV(), "keyword_template.csv"); err != nil {
				return err
			}
		case keywordDelete:
			if err := c.deleteKeyword(ctx, keywords); err != nil {
				return err
			}
		case keywordClear:
			deleted, err := c.api.ClearKeywords(ctx, 0, huhConfirmer())
			switch err {
			case nil:
				success("Deleted %d keywords", deleted)
			case client.ErrCancelled:
				notice("Clear cancelled")
			default:
				return err
			}
		case keywordBack:
			return nil
		}
	}
}

func (c console) addKeyword(ctx context.Context) error {
	var keyword string
	priority := client.PriorityMedium
	autoFlag := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Keyword").
				Placeholder("artist leak 2026").
				Value(&keyword).
				Validate(required("Keyword")),
			prioritySelect("Priority", &priority),
			huh.NewConfirm().
				Title("Auto-flag matches?").
				Value(&autoFlag),
		),
	).Run()
	if err != nil {
		return err
	}

	err = c.api.CreateKeyword(ctx, client.KeywordRequest{
		Keyword:  keyword,
		Priority: priority,
		AutoFlag: autoFlag,
	})
	if err != nil {
		return err
	}
	success("Added %q", keyword)
	return nil
}

func (c console) bulkImportKeywords(ctx context.Context) error {
	var path string
	if err := huh.NewInput().
		Title("File path").
		Placeholder("keywords.csv").
		Value(&path).
		Validate(required("File path")).
		Run(); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var result *client.BulkImportResult
	err = runWithSpinner("Importing keywords", func() error {
		var importErr error
		result, importErr = c.api.BulkImportKeywords(ctx, filepath.Base(path), content)
		return importErr
	})
	if err != nil {
		return err
	}

	success("Imported %d keywords, skipped %d", result.Imported, result.Skipped)
	for _, rowErr := range result.Errors {
		fmt.Println(warnStyle.Render("  " + rowErr))
	}
	return nil
}

func (c console) deleteKeyword(ctx context.Context, keywords []client.Keyword) error {
	if len(keywords) == 0 {
		notice("No keywords yet")
		return nil
	}
	options := make([]huh.Option[int64], 0, len(keywords))
	for _, k := range keywords {
		options = append(options, huh.NewOption(k.Keyword, k.ID))
	}
	var id int64
	if err := huh.NewSelect[int64]().
		Title("Delete which keyword?").
		Options(options...).
		Value(&id).
		Run(); err != nil {
		return err
	}
	if err := c.api.DeleteKeyword(ctx, id); err != nil {
		return err
	}
	success("Keyword deleted")
	return nil
}
