package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/catalog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	v, err := c.extract(deps.Extractor, string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catalog.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *ExtractCmd) extract(extractor catalog.Extractor, text string) (any, error) {
	switch c.Kind {
	case "listings":
		listings, ok, err := extractor.ExtractCourseListings(text)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return listings, nil
	case "page":
		return extractor.ExtractCoursePage(text)
	case "schedules":
		return extractor.ExtractCourseSchedules(text)
	default:
		return nil, catalog.Errorf(catalog.EINVALID, "unknown document kind %q", c.Kind)
	}
}
