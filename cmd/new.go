package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new project page",
	Long:  `Creates a project markdown file with front matter under content/projects/. With no argument, prompts for the details interactively.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var title string
	if len(args) == 1 {
		title = strings.TrimSpace(args[0])
	} else {
		prompt := promptui.Prompt{
			Label: "Project title",
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("title must not be empty")
				}
				return nil
			},
		}
		if title, err = prompt.Run(); err != nil {
			return err
		}
		title = strings.TrimSpace(title)
	}

	description := ""
	var tags []string
	if len(args) == 0 {
		descPrompt := promptui.Prompt{Label: "Short description"}
		if description, err = descPrompt.Run(); err != nil {
			return err
		}
		tagsPrompt := promptui.Prompt{Label: "Tags (comma-separated)"}
		raw, err := tagsPrompt.Run()
		if err != nil {
			return err
		}
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	slug := Slugify(title)
	if slug == "" {
		return fmt.Errorf("cannot derive a slug from title %q", title)
	}

	path := filepath.Join(cfg.Content.Dir, "projects", slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tagList := "[]"
	if len(tags) > 0 {
		tagList = "[" + strings.Join(tags, ", ") + "]"
	}

	stub := fmt.Sprintf(`---
title: %q
description: %q
date: %s
tags: %s
---

Write about the project here.
`, title, description, time.Now().Format("2006-01-02"), tagList)

	if err := os.WriteFile(path, []byte(stub), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugUnsafe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
