package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daylist/pkg/glyph"
)

// CategoryOptions selects a category by noun, key, symbol or alias.
type CategoryOptions struct {
	CategoryString string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions, usage string) {
	cmd.Flags().StringVarP(&o.CategoryString, "category", "c", "", usage)
}

// GetCategory returns glyph.Unknown when the flag was not given.
func (o *CategoryOptions) GetCategory() (glyph.Category, error) {
	if o.CategoryString == "" {
		return glyph.Unknown, nil
	}
	return glyph.CategoryForAlias(o.CategoryString)
}

// CategoryCompletions lists the category nouns that start with toComplete.
func CategoryCompletions(toComplete string) []string {
	var out []string
	for _, c := range glyph.Categories() {
		if strings.HasPrefix(c.String(), strings.ToLower(toComplete)) {
			out = append(out, c.String())
		}
	}
	return out
}
