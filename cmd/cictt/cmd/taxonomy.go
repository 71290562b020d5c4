package cmd

import (
	"fmt"

	"cictt/internal/core/engine"
	perr "cictt/internal/platform/errors"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	var group string
	var asJSON bool
	c := &cobra.Command{
		Use:   "categories",
		Short: "List taxonomy categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng := engine.New(nil)
			cats := eng.ListCategories()
			if group != "" {
				if cats = eng.ByGroup(group); len(cats) == 0 {
					return perr.NotFoundf("unknown group %q", group)
				}
			}
			if asJSON {
				return encodeJSON(cmd.OutOrStdout(), cats)
			}
			printCategories(cmd.OutOrStdout(), cats)
			return nil
		},
	}
	c.Flags().StringVarP(&group, "group", "g", "", "only this group")
	c.Flags().BoolVar(&asJSON, "json", false, "print categories with keywords as JSON")
	return c
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List category groups in taxonomy order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, g := range engine.New(nil).ListGroups() {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	var threshold int
	c := &cobra.Command{
		Use:   "search KEYWORD",
		Short: "Find categories whose vocabulary contains KEYWORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold < 0 || threshold > 10 {
				return perr.InvalidArgf("threshold must be within 0..10")
			}
			hits := engine.New(nil).Search(args[0], threshold)
			if len(hits) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no categories match %q\n", args[0])
				return nil
			}
			printHits(cmd.OutOrStdout(), hits)
			return nil
		},
	}
	c.Flags().IntVarP(&threshold, "threshold", "t", 0, "keyword weight must be above this")
	return c
}
