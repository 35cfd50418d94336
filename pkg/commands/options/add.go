package options

import (
	"errors"
	"strings"

	"tableflip.dev/daylist/pkg/glyph"
)

// AddOptions
type AddOptions struct {
	Category glyph.Category
	Title    string
}

// ParseArgs reads `<category> <title...>`.
func (o *AddOptions) ParseArgs(args []string) error {
	if len(args) < 1 {
		return errors.New("requires a category")
	}
	c, err := glyph.CategoryForAlias(args[0])
	if err != nil {
		return err
	}
	o.Category = c
	o.Title = strings.Join(args[1:], " ")
	return nil
}
