package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/archivetools/datforge/dat"
)

// promptHeader interactively fills in header fields that were not supplied
// as flags. Blank answers leave a field unset. Prompts go to w, answers are
// read line-by-line from r.
func promptHeader(r io.Reader, w io.Writer, opts *dat.Options) error {
	in := bufio.NewScanner(r)

	ask := func(current *string, prompt string) error {
		if *current != "" {
			return nil
		}
		fmt.Fprintf(w, "%s: ", prompt)
		if !in.Scan() {
			return in.Err()
		}
		*current = strings.TrimSpace(in.Text())
		return nil
	}

	h := &opts.Header
	prompts := []struct {
		field  *string
		prompt string
	}{
		{&h.Name, "DAT name"},
		{&h.Description, "Description"},
		{&h.Category, "Category"},
		{&h.Version, "Version"},
		{&h.Date, "Date (YYYY-MM-DD, blank = today)"},
		{&h.Author, "Author"},
		{&h.Comment, "Comment"},
		{&h.URL, "URL"},
	}
	for _, p := range prompts {
		if err := ask(p.field, p.prompt); err != nil {
			return err
		}
	}

	if h.ForcePacking == dat.PackingUnset {
		fmt.Fprint(w, "RomVault forcepacking (fileonly/archive/split, blank = none): ")
		if !in.Scan() {
			return in.Err()
		}
		packing, err := dat.ParseForcePacking(strings.ToLower(strings.TrimSpace(in.Text())))
		if err != nil {
			return err
		}
		h.ForcePacking = packing
	}
	return nil
}
