package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cs2fs/diag"
	"github.com/hashicorp/go-multierror"
)

// reportErrors prints a rendered diagnostic for every error in err, reading
// the offending source from the file each position names unless sources
// already holds it. It returns errReported so main stays quiet.
func reportErrors(w io.Writer, err error, sources map[string]string) error {
	if err == nil {
		return nil
	}
	errs := []error{err}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		errs = merr.Errors
	}

	useColor := colorFor(os.Stderr)
	for _, e := range errs {
		d := diag.FromError(e)
		source, ok := sources[d.Pos.File]
		if !ok && d.Pos.File != "" {
			if data, readErr := os.ReadFile(d.Pos.File); readErr == nil {
				source = string(data)
			}
		}
		fmt.Fprintln(w, d.Render(source, useColor))
	}
	return errReported
}
